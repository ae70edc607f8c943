package clinician

// Clinician is a treating provider. Clinicians enter the system as seed
// data or through Create; there is no update or delete.
type Clinician struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName returns the "Last, First" form used in dashboard columns.
func (c *Clinician) DisplayName() string {
	return c.LastName + ", " + c.FirstName
}
