package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mon,Tue,Wed,Thu,Fri,Sat,Sun", "Mon,Tue,Wed,Thu,Fri,Sat,Sun"},
		{"Mon,Wed,Fri", "Mon,Wed,Fri"},
		{"fri, mon", "Mon,Fri"}, // case-insensitive, order canonicalized
		{"", ""},
		{"Funday,Mon", "Mon"}, // unknown codes ignored
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseDays(tt.in).String(); got != tt.want {
				t.Errorf("ParseDays(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekdaySet_Contains(t *testing.T) {
	set := ParseDays("Mon,Sun")
	if !set.Contains(time.Monday) {
		t.Error("set should contain Monday")
	}
	if !set.Contains(time.Sunday) {
		t.Error("set should contain Sunday")
	}
	if set.Contains(time.Wednesday) {
		t.Error("set should not contain Wednesday")
	}
	if got := set.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestWeekdaySet_JSONRoundTrip(t *testing.T) {
	task := TaskDefinition{Name: "Gym", Type: TaskBool, Weight: 20, Days: ParseDays("Mon,Wed,Fri")}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back TaskDefinition
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back.Days.String() != "Mon,Wed,Fri" {
		t.Errorf("Days = %q after round trip, want Mon,Wed,Fri", back.Days.String())
	}
}

func TestConfig_AppendReplaceAt(t *testing.T) {
	var cfg Config
	cfg.Append(boolTask("Gym", 20))
	cfg.Append(boolTask("Reading", 10))

	edited := boolTask("Reading", 30)
	if err := cfg.ReplaceAt(1, edited); err != nil {
		t.Fatalf("ReplaceAt(1) error: %v", err)
	}
	if cfg[1].Weight != 30 {
		t.Errorf("Weight = %d after replace, want 30", cfg[1].Weight)
	}
	if err := cfg.ReplaceAt(5, edited); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("ReplaceAt(5) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := cfg.ReplaceAt(-1, edited); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("ReplaceAt(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestConfig_NormalizeDefaults(t *testing.T) {
	now := localDate(2025, time.July, 15)
	cfg := Config{
		{Name: "Gym", Type: TaskBool, Weight: 20, Days: AllWeekdays()},
	}
	cfg.Normalize(now)

	if cfg[0].StartDate != "2025-01-01" {
		t.Errorf("StartDate = %q, want 2025-01-01", cfg[0].StartDate)
	}
	if cfg[0].EndDate != "2025-12-31" {
		t.Errorf("EndDate = %q, want 2025-12-31", cfg[0].EndDate)
	}
}

func TestConfig_NormalizeOneTimeDays(t *testing.T) {
	cfg := Config{
		// 2025-06-11 is a Wednesday.
		{Name: "Dentist", Type: TaskBool, Weight: 10, StartDate: "2025-06-11", EndDate: "2025-06-11"},
	}
	cfg.Normalize(localDate(2025, time.June, 1))
	if got := cfg[0].Days.String(); got != "Wed" {
		t.Errorf("Days = %q after normalize, want Wed", got)
	}
}

func TestTaskDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    TaskDefinition
		wantErr error
	}{
		{"valid bool", boolTask("Gym", 20), nil},
		{"valid time", timeTask("Wake up", "06:00", Before, 20), nil},
		{"blank name", boolTask("  ", 20), ErrNameRequired},
		{"unknown type", TaskDefinition{Name: "X", Type: "exercise", Days: AllWeekdays()}, ErrUnknownType},
		{"time without target", TaskDefinition{Name: "X", Type: TaskTime, Days: AllWeekdays()}, ErrBadTarget},
		{"time bad condition", TaskDefinition{Name: "X", Type: TaskTime, Target: "06:00", Days: AllWeekdays()}, ErrBadCondition},
		{"repeating without days", TaskDefinition{Name: "X", Type: TaskBool, StartDate: "2025-01-01", EndDate: "2025-02-01"}, ErrNoDaysSelected},
		{"bad date", TaskDefinition{Name: "X", Type: TaskBool, Days: AllWeekdays(), StartDate: "junk"}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(localDate(2025, time.March, 1))
	if len(cfg) != 5 {
		t.Fatalf("len(DefaultConfig) = %d, want 5", len(cfg))
	}
	for _, task := range cfg {
		if err := task.Validate(); err != nil {
			t.Errorf("seed task %q invalid: %v", task.Name, err)
		}
		if task.StartDate != "2025-01-01" || task.EndDate != "2025-12-31" {
			t.Errorf("seed task %q bounds = %s..%s, want current year", task.Name, task.StartDate, task.EndDate)
		}
	}
	if cfg[0].Type != TaskTime || cfg[0].Condition != Before {
		t.Errorf("first seed task should be a before-time wake task, got %+v", cfg[0])
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"06:00", 6.0, true},
		{"06:30", 6.5, true},
		{"00:00", 0.0, true},
		{"23:59", 23.0 + 59.0/60.0, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"", 0, false},
		{"noon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			if ok != tt.valid {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.in, ok, tt.valid)
			}
			if ok && !approx(got, tt.want) {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLog_RecordAndPresence(t *testing.T) {
	log := Log{}
	if _, ok := log.Day("2025-01-06"); ok {
		t.Error("empty log should have no day bucket")
	}

	log.Record("2025-01-06", "Gym", "false")
	if _, ok := log.Day("2025-01-06"); !ok {
		t.Error("Record should create the day bucket")
	}

	// A logged falsy value is present, just worth nothing.
	v, ok := log.Value("2025-01-06", "Gym")
	if !ok || v != "false" {
		t.Errorf("Value = %q, %v; want \"false\", true", v, ok)
	}
	if _, ok := log.Value("2025-01-06", "Reading"); ok {
		t.Error("unset task should read as absent")
	}
}
