package components

import (
	"strconv"
	"time"

	"github.com/recera/haven/pkg/view"
)

// StampYear writes now's year into the footer's #year element
func StampYear(page view.Page, now time.Time) error {
	el := page.ByID("year")
	if el == nil {
		return Missing("#year")
	}
	el.SetText(strconv.Itoa(now.Year()))
	return nil
}
