package valueobjects

import "fmt"

// OperatingStatus is the operator-controlled flag that marks whether the
// equipment behind an alert is running again.
type OperatingStatus string

const (
	StatusOperating    OperatingStatus = "operating"
	StatusNotOperating OperatingStatus = "not_operating"
)

var validOperatingStatuses = map[OperatingStatus]bool{
	StatusOperating:    true,
	StatusNotOperating: true,
}

func (s OperatingStatus) String() string {
	return string(s)
}

func (s OperatingStatus) IsValid() bool {
	return validOperatingStatuses[s]
}

func (s OperatingStatus) IsOperating() bool {
	return s == StatusOperating
}

func NewOperatingStatus(v string) (OperatingStatus, error) {
	s := OperatingStatus(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid operating status: %s", v)
	}
	return s, nil
}
