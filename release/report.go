package release

import "github.com/pwalch/lonesnake-release/version"

// Update is the machine readable form of a version.RequiredUpdate.
type Update struct {
	Minor     string `json:"minor" jsonschema:"description=CPython release line,example=3.12"`
	Current   int    `json:"current" jsonschema:"description=Patch number carried by the lonesnake script"`
	Available int    `json:"available" jsonschema:"description=Latest patch number listed on python.org"`
}

// UpdateReport is printed by is-new-update-available in JSON mode.
type UpdateReport struct {
	UpToDate bool     `json:"up_to_date"`
	Updates  []Update `json:"updates"`
}

// NewUpdateReport wraps updates into an UpdateReport.
func NewUpdateReport(updates []version.RequiredUpdate) UpdateReport {
	report := UpdateReport{
		UpToDate: len(updates) == 0,
		Updates:  make([]Update, 0, len(updates)),
	}

	for _, u := range updates {
		report.Updates = append(report.Updates, Update{
			Minor:     u.MinorVersion,
			Current:   u.Current.Patch,
			Available: u.Available.Patch,
		})
	}

	return report
}
