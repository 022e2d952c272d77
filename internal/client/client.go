package client

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

// Client is a subscriber. ServiceUnits is the contracted bandwidth in Mb.
type Client struct {
	ID           uuid.UUID
	Name         string
	IP           string
	MAC          string
	ServiceUnits int
	ZoneID       string
	Active       bool
	Router       bool
	Switch       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyFee is the amount owed per month: units times the zone tariff.
func (c *Client) MonthlyFee(tariffs zone.Tariffs) int64 {
	return money.MulUnits(tariffs.Of(c.ZoneID), c.ServiceUnits)
}

const (
	MinServiceUnits = 1
	MaxServiceUnits = 50
)

var macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)

// ValidIP reports whether ip is a host address of the 192.168.10.0/24 network.
func ValidIP(ip string) bool {
	segs := strings.Split(strings.TrimSpace(ip), ".")
	if len(segs) != 4 || segs[0] != "192" || segs[1] != "168" || segs[2] != "10" {
		return false
	}

	last, err := strconv.Atoi(segs[3])
	if err != nil {
		return false
	}

	return last >= 1 && last <= 254
}

func ValidMAC(mac string) bool {
	return macPattern.MatchString(strings.TrimSpace(mac))
}

// Params are the editable fields of a client.
type Params struct {
	Name         string
	IP           string
	MAC          string
	ServiceUnits int
	ZoneID       string
	Router       bool
	Switch       bool
}

// normalize trims the fields, upper-cases the MAC and reports every problem at
// once. Zone existence is checked by the caller.
func (p Params) normalize() (Params, error) {
	var verr validation.Error

	p.Name = strings.TrimSpace(p.Name)
	p.IP = strings.TrimSpace(p.IP)
	p.MAC = strings.ToUpper(strings.TrimSpace(p.MAC))
	p.ZoneID = strings.TrimSpace(p.ZoneID)

	if p.Name == "" {
		verr.Add("name", "is required")
	}

	if !ValidIP(p.IP) {
		verr.Add("ip", "must be 192.168.10.X with X between 1 and 254")
	}

	if !ValidMAC(p.MAC) {
		verr.Add("mac", "must look like AA:BB:CC:DD:EE:FF")
	}

	if p.ServiceUnits < MinServiceUnits || p.ServiceUnits > MaxServiceUnits {
		verr.Add("service_units", "must be an integer between 1 and 50")
	}

	if p.ZoneID == "" {
		verr.Add("zone_id", "is required")
	}

	return p, verr.Err()
}

// Prorate returns the share of monthlyFee owed for the rest of the billing
// cycle containing now. Cycles run from anchorDay to anchorDay, and the day of
// now counts as remaining.
func Prorate(now time.Time, anchorDay int, monthlyFee int64) int64 {
	if monthlyFee <= 0 {
		return 0
	}

	start, end := period.Cycle(now, anchorDay)

	total := max(1, period.Days(start, end))
	used := min(total, max(0, period.Days(start, period.DayStart(now))))

	return money.Ratio(monthlyFee, total-used, total)
}
