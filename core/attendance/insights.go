package attendance

import (
	"math/rand"
	"sync"
	"time"

	"github.com/trezcool/attendo/core"
)

// TimeRange selects the window of an Analytics summary.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
)

func (tr TimeRange) IsValid() bool {
	switch tr {
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear:
		return true
	}
	return false
}

type (
	// DayTally is the class-wide status count of one school day.
	DayTally struct {
		Present int `json:"present"`
		Absent  int `json:"absent"`
		Tardy   int `json:"tardy"`
		Excused int `json:"excused"`
		Total   int `json:"total"`
	}

	Overview struct {
		AverageAttendance int `json:"averageAttendance"`
		AtRiskStudents    int `json:"atRiskStudents"`
		PerfectAttendance int `json:"perfectAttendance"`
		ChronicAbsence    int `json:"chronicAbsence"`
	}

	Distribution struct {
		Values []int `json:"values"` // present, absent, tardy, excused
	}

	Trends struct {
		Labels []string `json:"labels"`
		Values []int    `json:"values"`
	}

	StudentPerformance struct {
		ID             int      `json:"id"`
		Name           string   `json:"name"`
		AttendanceRate int      `json:"attendanceRate"`
		PresentDays    int      `json:"presentDays"`
		AbsentDays     int      `json:"absentDays"`
		Status         Standing `json:"status"`
	}

	Analytics struct {
		TimeRange          TimeRange            `json:"timeRange"`
		Overview           Overview             `json:"overview"`
		Distribution       Distribution         `json:"distribution"`
		Trends             Trends               `json:"trends"`
		StudentPerformance []StudentPerformance `json:"studentPerformance"`
	}

	Report struct {
		ID        int       `json:"id"`
		Name      string    `json:"name"`
		Type      string    `json:"type"`
		CreatedAt time.Time `json:"createdAt"`
		FileSize  string    `json:"fileSize"`
	}

	// Insights produces the calendar, analytics and reports views.
	Insights interface {
		// MonthlyAttendance returns a DayTally per school day (weekends excluded) in [start, end], keyed by ISO date.
		MonthlyAttendance(start, end time.Time) map[string]DayTally
		Analytics(tr TimeRange) Analytics
		Reports() []Report
	}
)

// SyntheticInsights fabricates plausible insights without looking at any record.
// It stands in until a real aggregation replaces it.
type SyntheticInsights struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ Insights = (*SyntheticInsights)(nil) // interface compliance check

// NewSyntheticInsights returns a generator seeded with `seed`; 0 seeds from the clock.
func NewSyntheticInsights(seed int64) *SyntheticInsights {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SyntheticInsights{rnd: rand.New(rand.NewSource(seed))}
}

func (si *SyntheticInsights) MonthlyAttendance(start, end time.Time) map[string]DayTally {
	si.mu.Lock()
	defer si.mu.Unlock()

	monthly := make(map[string]DayTally)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, start.Location())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if core.IsWeekend(d) {
			continue
		}
		total := 25 + si.rnd.Intn(5)
		present := int(float64(total) * (0.8 + si.rnd.Float64()*0.15))
		absent := int(float64(total-present) * 0.6)
		tardy := int(float64(total-present-absent) * 0.7)
		monthly[core.FormatDate(d)] = DayTally{
			Present: present,
			Absent:  absent,
			Tardy:   tardy,
			Excused: total - present - absent - tardy,
			Total:   total,
		}
	}
	return monthly
}

func (si *SyntheticInsights) Analytics(tr TimeRange) Analytics {
	if !tr.IsValid() {
		tr = RangeMonth
	}
	return Analytics{
		TimeRange: tr,
		Overview: Overview{
			AverageAttendance: 87,
			AtRiskStudents:    3,
			PerfectAttendance: 8,
			ChronicAbsence:    1,
		},
		Distribution: Distribution{Values: []int{420, 45, 32, 18}},
		Trends: Trends{
			Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"},
			Values: []int{85, 87, 89, 87},
		},
		StudentPerformance: []StudentPerformance{
			{ID: 1, Name: "Emma Wilson", AttendanceRate: 65, PresentDays: 13, AbsentDays: 7, Status: StandingAtRisk},
			{ID: 2, Name: "James Johnson", AttendanceRate: 78, PresentDays: 16, AbsentDays: 4, Status: StandingWarning},
			{ID: 3, Name: "Sarah Davis", AttendanceRate: 72, PresentDays: 14, AbsentDays: 6, Status: StandingWarning},
		},
	}
}

func (si *SyntheticInsights) Reports() []Report {
	now := core.Now()
	return []Report{
		{ID: 1, Name: "Weekly Attendance Summary", Type: "Weekly Report", CreatedAt: now.AddDate(0, 0, -2), FileSize: "2.4 MB"},
		{ID: 2, Name: "Monthly Analysis - November", Type: "Monthly Report", CreatedAt: now.AddDate(0, 0, -7), FileSize: "5.1 MB"},
		{ID: 3, Name: "At-Risk Students Alert", Type: "Alert Report", CreatedAt: now.AddDate(0, 0, -14), FileSize: "1.2 MB"},
	}
}
