package domain

import (
	"context"
	"errors"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a static reference entry describing one government department.
// The table is seeded once at startup and read-only at runtime.
type Service struct {
	ServiceID string `json:"service_id" gorm:"primaryKey;column:service_id;type:text"`
	Title     string `json:"title" gorm:"type:text;not null"`
	Details   string `json:"details" gorm:"type:text;not null"`
}

func (Service) TableName() string { return "services" }

type ServiceRepository interface {
	List(ctx context.Context) ([]Service, error)
	Exists(ctx context.Context, serviceID string) (bool, error)
}

// SeedServices is the reference data loaded into the services table on
// first start.
func SeedServices() []Service {
	return []Service{
		{
			ServiceID: "revenue",
			Title:     "Revenue Department",
			Details: "- Land Records: View and download your land ownership details.\n" +
				"- Property Registration: Apply for and track property registration.\n" +
				"- Income Certificates: Apply for income certificates.\n" +
				"- Fee: ₹50-₹500 depending on service.\n" +
				"- Processing Time: 3-7 working days.\n" +
				"- Contact: revenue-office@state.gov.in",
		},
		{
			ServiceID: "municipal",
			Title:     "Municipal Services",
			Details: "- Property Tax: Pay or check outstanding property taxes.\n" +
				"- Water Supply: Apply for new connection or complaints.\n" +
				"- Waste Management: Report uncollected garbage.\n" +
				"- Fee: Variable.\n" +
				"- Processing Time: 2-5 working days.\n" +
				"- Contact: municipal-corporation@city.gov.in",
		},
		{
			ServiceID: "health",
			Title:     "Health Department",
			Details: "- Medical Certificates: Apply for medical fitness/disability certificates.\n" +
				"- Vaccination Records: Check immunization details.\n" +
				"- Health Schemes: Learn about state and central health schemes.\n" +
				"- Fee: Free for most services.\n" +
				"- Processing Time: Immediate to 3 days.\n" +
				"- Contact: health-dept@state.gov.in",
		},
		{
			ServiceID: "education",
			Title:     "Education Department",
			Details: "- School Admissions: Apply for government and aided schools.\n" +
				"- Scholarships: Check eligibility and apply online.\n" +
				"- Educational Certificates: Duplicate or verification services.\n" +
				"- Fee: Free or nominal.\n" +
				"- Processing Time: 5-10 working days.\n" +
				"- Contact: edu-dept@state.gov.in",
		},
		{
			ServiceID: "social_welfare",
			Title:     "Social Welfare Department",
			Details: "- Pension Schemes: Apply for old-age or widow pensions.\n" +
				"- Disability Certificates: Required for welfare benefits.\n" +
				"- Welfare Programs: State-funded benefits for underprivileged groups.\n" +
				"- Fee: Free.\n" +
				"- Processing Time: 7-15 working days.\n" +
				"- Contact: socialwelfare@state.gov.in",
		},
		{
			ServiceID: "agriculture",
			Title:     "Agriculture Department",
			Details: "- Farmer Registration: Register for crop benefits.\n" +
				"- Subsidies: Apply for fertilizer, seed, and equipment subsidies.\n" +
				"- Crop Insurance: Apply and check claim status.\n" +
				"- Fee: Free to nominal.\n" +
				"- Processing Time: 5-7 working days.\n" +
				"- Contact: agri-dept@state.gov.in",
		},
	}
}
