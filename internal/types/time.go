package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Time is a point in time that is stored in the database as epoch
// milliseconds. This keeps the column readable for other tools working
// with the same database file.
type Time time.Time

// TimeOf returns the Time for a time instant, normalized to UTC with
// millisecond precision.
func TimeOf(t time.Time) Time {
	return Time(t.In(time.UTC).Truncate(time.Millisecond))
}

// Time returns the underlying time instant.
func (t Time) Time() time.Time {
	return time.Time(t)
}

// IsZero reports if the time is the zero value.
func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (t Time) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Time) UnmarshalJSON(data []byte) error {
	var parsed time.Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		return err
	}

	*t = TimeOf(parsed)
	return nil
}

// Scan reads the epoch millisecond value from the database.
func (t *Time) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		*t = Time(time.UnixMilli(v).In(time.UTC))
	case nil:
		*t = Time{}
	default:
		return fmt.Errorf("cannot scan %T into Time", value)
	}

	return nil
}

// Value returns the epoch millisecond value for the SQL driver to write
// to the database.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t).UnixMilli(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Time) GormDataType() string {
	return "INTEGER"
}
