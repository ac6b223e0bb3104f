package user

// Gender values accepted by the API. Input is matched case-insensitively and
// stored lowercase.
const (
	GenderMale        = "male"
	GenderFemale      = "female"
	GenderTransgender = "transgender"
)

// User is the persisted entity. ID is server-assigned and immutable; names
// are stored title-cased, gender lowercase.
type User struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Gender    string `json:"gender" db:"gender"`
}
