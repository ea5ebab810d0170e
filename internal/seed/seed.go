package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/repository"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
	"github.com/nexplant/production-manager/backend/internal/utils"
)

// ShiftNames labels the usual three-shift pattern. Other windows found in a
// plan header are named after their bounds.
var ShiftNames = map[string]string{
	"06:00-14:00": "Morning",
	"14:00-22:00": "Afternoon",
	"22:00-06:00": "Night",
}

var infoHeaders = []string{"device_id", "device_name", "product", "rated_speed"}

type PlanRow struct {
	DeviceID   string
	DeviceName string
	Product    string
	RatedSpeed float64
	// indexes into Plan.Shifts the device runs during
	Shifts []int
}

// Plan is a demo production plan: which device runs which product in
// which shift, every day.
type Plan struct {
	Shifts []shiftwindow.NamedWindow
	Rows   []PlanRow
}

// ParsePlan reads a CSV whose header holds the info columns followed by one
// column per shift written as "HH:MM-HH:MM". A non-empty cell under a shift
// column schedules the row's device for that shift.
func ParsePlan(r io.Reader) (*Plan, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	plan := &Plan{}
	info := make(map[string]int)
	var shiftColumns []int

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if !strings.Contains(header, "-") {
			info[header] = i
			continue
		}

		start, end, _ := strings.Cut(header, "-")
		window, err := shiftwindow.ParseInterval(start, end)
		if err != nil {
			return nil, fmt.Errorf("shift column %q: %w", header, err)
		}

		name, ok := ShiftNames[header]
		if !ok {
			name = "Shift " + header
		}
		shiftColumns = append(shiftColumns, i)
		plan.Shifts = append(plan.Shifts, shiftwindow.NamedWindow{Name: name, Window: window})
	}

	for _, h := range infoHeaders {
		if _, ok := info[h]; !ok {
			return nil, fmt.Errorf("missing column %q", h)
		}
	}
	if len(plan.Shifts) == 0 {
		return nil, errors.New("no shift columns found")
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		speed, err := strconv.ParseFloat(record[info["rated_speed"]], 64)
		if err != nil || speed <= 0 {
			return nil, fmt.Errorf("line %d: invalid rated speed %q", line, record[info["rated_speed"]])
		}

		row := PlanRow{
			DeviceID:   record[info["device_id"]],
			DeviceName: record[info["device_name"]],
			Product:    record[info["product"]],
			RatedSpeed: speed,
		}
		for shift, col := range shiftColumns {
			if strings.TrimSpace(record[col]) != "" {
				row.Shifts = append(row.Shifts, shift)
			}
		}
		plan.Rows = append(plan.Rows, row)
	}

	for i := 0; i < len(plan.Shifts); i++ {
		for j := i + 1; j < len(plan.Shifts); j++ {
			if plan.Shifts[i].Window.Overlaps(plan.Shifts[j].Window) {
				return nil, fmt.Errorf("shifts %q and %q overlap", plan.Shifts[i].Name, plan.Shifts[j].Name)
			}
		}
	}

	return plan, nil
}

// SeedPlan writes the plan into the company: shifts, products and devices
// first, then one full-shift production schedule per device, shift and day
// starting at from.
func SeedPlan(r *repository.Repository, companyID string, plan *Plan, from time.Time, days int) error {
	shifts := make([]*domain.Shift, len(plan.Shifts))
	for i, s := range plan.Shifts {
		shifts[i] = &domain.Shift{
			CompanyID: companyID,
			Name:      s.Name,
			StartTime: s.Window.Start,
			EndTime:   s.Window.End,
		}
		if err := r.CreateShift(shifts[i]); err != nil {
			return fmt.Errorf("create shift %q: %w", s.Name, err)
		}
	}

	products := make(map[string]*domain.Product)
	devices := make(map[string]*domain.Device)

	for _, row := range plan.Rows {
		if _, ok := products[row.Product]; !ok {
			product := &domain.Product{CompanyID: companyID, Name: row.Product, RatedSpeed: row.RatedSpeed}
			if err := r.CreateProduct(product); err != nil {
				return fmt.Errorf("create product %q: %w", row.Product, err)
			}
			products[row.Product] = product
		}

		if _, ok := devices[row.DeviceID]; !ok {
			device := &domain.Device{ID: row.DeviceID, CompanyID: companyID, Name: row.DeviceName, Type: "line"}
			if err := r.CreateDevice(device); err != nil {
				return fmt.Errorf("create device %q: %w", row.DeviceID, err)
			}
			devices[row.DeviceID] = device
		}
	}

	dates, err := shiftwindow.ExpandDates(from, from.AddDate(0, 0, days-1))
	if err != nil {
		return err
	}

	cnt := 0
	for _, row := range plan.Rows {
		product := products[row.Product]
		device := devices[row.DeviceID]

		for _, i := range row.Shifts {
			shift := shifts[i]
			base := &domain.ProductionSchedule{
				CompanyID:  companyID,
				Name:       fmt.Sprintf("%s %s (%s)", device.Name, product.Name, shift.Name),
				DeviceID:   device.ID,
				ProductID:  product.ID,
				ShiftID:    shift.ID,
				StartTime:  shift.StartTime,
				EndTime:    shift.EndTime,
				RatedSpeed: product.RatedSpeed,
			}
			if days > 1 {
				base.Recurrence = &domain.Recurrence{StartDate: dates[0], EndDate: dates[len(dates)-1]}
			}

			schedules := utils.BuildScheduleOccurrences(base, dates)
			if err := r.CreateProductionSchedules(schedules); err != nil {
				slog.Error("failed to insert production schedules", "device", device.ID, "shift", shift.Name, "error", err)
				continue
			}
			cnt += len(schedules)
		}
	}

	slog.Info("plan seeded", "shifts", len(shifts), "products", len(products), "devices", len(devices), "schedules", cnt)
	return nil
}
