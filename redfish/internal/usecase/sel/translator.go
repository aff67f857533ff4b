// Package sel translates native IPMI System Event Log entries into Redfish log entries.
package sel

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rackhd/redfish-gateway/internal/entity"
)

const timestampLayout = "2006-01-02T15:04:05Z07:00"

var (
	dateRegex = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	timeRegex = regexp.MustCompile(`(\d{1,2}):(\d{1,2}):(\d{1,2})`)
)

// ChassisLookup returns the enclosures of a node.
type ChassisLookup interface {
	Chassis(ctx context.Context, nodeID string) ([]string, error)
}

// Translator converts native SEL entries for a node.
type Translator struct {
	chassis  ChassisLookup
	basePath string
}

// New creates a Translator. Origins are rooted at basePath.
func New(chassis ChassisLookup, basePath string) *Translator {
	return &Translator{chassis: chassis, basePath: basePath}
}

// Translate converts entries concurrently. Output order matches input order.
func (t *Translator) Translate(ctx context.Context, entries []entity.NativeSelEntry, nodeID string) ([]entity.SelEntry, error) {
	out := make([]entity.SelEntry, len(entries))

	g, gctx := errgroup.WithContext(ctx)

	for i := range entries {
		i := i

		g.Go(func() error {
			translated, err := t.translate(gctx, entries[i], nodeID)
			if err != nil {
				return err
			}

			out[i] = translated

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// TranslateOne converts a single entry.
func (t *Translator) TranslateOne(ctx context.Context, entry entity.NativeSelEntry, nodeID string) (entity.SelEntry, error) {
	return t.translate(ctx, entry, nodeID)
}

func (t *Translator) translate(ctx context.Context, entry entity.NativeSelEntry, nodeID string) (entity.SelEntry, error) {
	origin, err := t.origin(ctx, entry.SensorType, nodeID)
	if err != nil {
		return entity.SelEntry{}, err
	}

	return entity.SelEntry{
		LogID:        entry.LogID,
		Timestamp:    Timestamp(entry.Date, entry.Time),
		SensorType:   SensorType(entry.SensorType),
		Value:        EventType(entry.Value),
		Event:        entry.Event,
		SensorNumber: SensorNumber(entry.SensorNumber),
		Origin:       origin,
	}, nil
}

func (t *Translator) origin(ctx context.Context, sensorType, nodeID string) (*string, error) {
	var suffix string

	switch sensorType {
	case "Drive Slot":
		path := t.basePath + "/Systems/" + nodeID + "/SimpleStorage"

		return &path, nil
	case "Power Unit", "Power Supply":
		suffix = "/Power"
	case "Fan", "Temperature":
		suffix = "/Thermal"
	default:
		return nil, nil
	}

	chassis, err := t.chassis.Chassis(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	path := t.basePath + "/Chassis/" + strings.Join(chassis, ",") + suffix

	return &path, nil
}

// Timestamp builds an RFC 3339 UTC timestamp from an M/D/YYYY date and an
// optional h:m:s time. It returns nil when the date is empty or unparseable.
func Timestamp(date, clock string) *string {
	if date == "" {
		return nil
	}

	d := dateRegex.FindStringSubmatch(date)
	if d == nil {
		return nil
	}

	month, day, year := atoi(d[1]), atoi(d[2]), atoi(d[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	var hour, minute, second int
	if c := timeRegex.FindStringSubmatch(clock); c != nil {
		hour, minute, second = atoi(c[1]), atoi(c[2]), atoi(c[3])
		if hour > 23 || minute > 59 || second > 59 {
			return nil
		}
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if ts.Day() != day {
		return nil
	}

	s := ts.Format(timestampLayout)

	return &s
}

// SensorNumber parses an IPMI sensor number such as "#0x30" or "12".
// A 0x prefix selects hexadecimal, otherwise leading decimal digits are used.
// Input without digits yields 0.
func SensorNumber(raw string) int {
	s := strings.TrimPrefix(raw, "#")
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}

	base := 10
	if len(s) > 1 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}

	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0
	}

	if negative {
		n = -n
	}

	return int(n)
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		return true
	}

	return false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)

	return n
}
