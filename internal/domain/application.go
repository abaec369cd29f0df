package domain

import (
	"context"
	"crypto/rand"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationStatusSubmitted is the initial status of every application.
const ApplicationStatusSubmitted = "Submitted"

// Details is a free-form key/value payload attached to an application.
// It is stored as a JSON text column and validated into a typed map at
// the API boundary.
type Details map[string]string

func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *Details) Scan(src any) error {
	if src == nil {
		*d = Details{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("details: cannot scan %T", src)
	}

	if len(raw) == 0 {
		*d = Details{}
		return nil
	}

	return json.Unmarshal(raw, d)
}

// Application is a citizen's request for a government service. An optional
// uploaded document is stored inline as a blob; FileData never appears in
// JSON responses and is streamed back byte-exact by the download endpoint.
type Application struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ServiceID    string    `json:"service_id" gorm:"type:text;not null;index"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	Email        string    `json:"email" gorm:"type:text"`
	Phone        string    `json:"phone" gorm:"type:text"`
	Purpose      string    `json:"purpose" gorm:"type:text"`
	TicketNumber string    `json:"ticket_number" gorm:"type:text;uniqueIndex"`
	Status       string    `json:"status" gorm:"type:text;default:Submitted"`
	Details      Details   `json:"details" gorm:"type:text"`
	FileName     string    `json:"file_name" gorm:"type:text"`
	FileData     []byte    `json:"-" gorm:"type:blob"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;column:submission_date"`
}

func (Application) TableName() string { return "applications" }

func (a *Application) HasFile() bool {
	return a.FileName != "" && len(a.FileData) > 0
}

const ticketAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTicketNumber returns a random 8-character uppercase alphanumeric code.
// Uniqueness is probabilistic (36^8 space): the schema declares a unique
// index but generation does not consult the store.
func NewTicketNumber() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in bad shape anyway
		panic(err)
	}
	for i, b := range buf {
		buf[i] = ticketAlphabet[int(b)%len(ticketAlphabet)]
	}
	return string(buf)
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	// List returns all applications, newest first.
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id uint) (*Application, error)
	// UpdateStatus is unconditional: updating an id that does not exist
	// succeeds with zero rows affected.
	UpdateStatus(ctx context.Context, id uint, status string) error
	// ListWithFiles returns applications carrying an uploaded document,
	// newest first, optionally filtered by applicant email, capped at limit.
	ListWithFiles(ctx context.Context, email string, limit int) ([]Application, error)
}
