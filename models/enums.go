package models

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/shreeramenterprise/sems_backend/utils"
)

type PaymentMode string

const (
	PaymentModeCash PaymentMode = "Cash"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeBank PaymentMode = "Bank"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeBank:
		return true
	}
	return false
}

type StaffRole string

const (
	StaffRoleAdmin StaffRole = "admin"
	StaffRoleStaff StaffRole = "staff"
)

func (r StaffRole) Valid() bool {
	return r == StaffRoleAdmin || r == StaffRoleStaff
}

// The four stock materials. Custom material names are allowed in rates,
// so Material stays a free string column; these are the defaults.
const (
	MaterialReti   = "RETI"
	MaterialKapchi = "KAPCHI"
	MaterialGSB    = "GSB"
	MaterialRabar  = "RABAR"
)

func DefaultMaterials() []string {
	return []string{MaterialReti, MaterialKapchi, MaterialGSB, MaterialRabar}
}

// DateString is a calendar date carried as "2006-01-02" in JSON and stored
// as a DATE column.
type DateString time.Time

const dateLayout = "2006-01-02"

func (t DateString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(dateLayout) + `"`), nil
}

func (t *DateString) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		// tolerate full timestamps from older clients
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return utils.NewInputError("date must be formatted as " + dateLayout)
		}
	}
	*t = DateString(parsed)
	return nil
}

func (t DateString) Value() (driver.Value, error) {
	return time.Time(t), nil
}

func (t *DateString) Scan(v interface{}) error {
	switch val := v.(type) {
	case time.Time:
		*t = DateString(val)
		return nil
	case []byte:
		parsed, err := time.Parse(dateLayout, string(val))
		if err != nil {
			return err
		}
		*t = DateString(parsed)
		return nil
	case string:
		parsed, err := time.Parse(dateLayout, val)
		if err != nil {
			return err
		}
		*t = DateString(parsed)
		return nil
	}
	return errors.New("unsupported scan type for DateString")
}

func (t DateString) Time() time.Time {
	return time.Time(t)
}

func (t DateString) IsZero() bool {
	return time.Time(t).IsZero()
}

func (DateString) GormDataType() string {
	return "date"
}
