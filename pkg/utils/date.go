package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth interpreta uma competência no formato AAAA-MM, usado nos filtros
// dos gráficos de evolução mensal.
func ParseMonth(monthStr string) (*time.Time, error) {
	var month time.Time

	if monthStr != "" {
		incomingMonth, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return nil, err
		}

		month = incomingMonth
	}

	return &month, nil
}
