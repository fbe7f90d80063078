package domain

// ContactInfo is the shop's published contact card.
type ContactInfo struct {
	Email         string `json:"email"`
	PhoneGlobe    string `json:"phone_globe"`
	PhoneSmart    string `json:"phone_smart"`
	PhoneLandline string `json:"phone_landline"`
	Address       string `json:"address"`
}

// BusinessHour is one weekday entry of the shop schedule. Open and close
// times are canonical HH:MM:SS, nil when the shop is closed that day.
type BusinessHour struct {
	Day       string  `json:"day"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	IsClosed  int     `json:"is_closed"`
}

// Weekdays fixes the calendar-week ordering of schedule entries.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DefaultBusinessHours is the all-closed schedule served when the table
// holds no rows yet.
func DefaultBusinessHours() []BusinessHour {
	hours := make([]BusinessHour, 0, len(Weekdays))
	for _, day := range Weekdays {
		hours = append(hours, BusinessHour{Day: day, IsClosed: 1})
	}
	return hours
}
