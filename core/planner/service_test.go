package planner

import (
	"reflect"
	"testing"
)

func section(code, sec string, days []string, start, end int) Section {
	return Section{CourseCode: code, Section: sec, Days: days, StartMin: start, EndMin: end}
}

func TestFindClashes(t *testing.T) {
	tests := []struct {
		name     string
		selected []Section
		want     []Clash
	}{
		{
			name: "overlap on a shared day",
			selected: []Section{
				section("CSE2215", "A", []string{"Sat", "Tue"}, 510, 590),
				section("CSE2217", "B", []string{"Sat", "Thu"}, 570, 650),
			},
			want: []Clash{{First: "CSE2215 [A]", Second: "CSE2217 [B]", Day: "Sat"}},
		},
		{
			name: "same times on different days",
			selected: []Section{
				section("CSE2215", "A", []string{"Sat"}, 510, 590),
				section("CSE2217", "B", []string{"Sun"}, 510, 590),
			},
			want: []Clash{},
		},
		{
			name: "back to back is not a clash",
			selected: []Section{
				section("CSE2215", "A", []string{"Mon"}, 510, 590),
				section("CSE2217", "B", []string{"Mon"}, 590, 670),
			},
			want: []Clash{},
		},
		{
			name: "every overlapping pair is reported",
			selected: []Section{
				section("CSE2215", "A", []string{"Wed"}, 500, 620),
				section("CSE2217", "B", []string{"Wed"}, 540, 660),
				section("MATH2205", "C", []string{"Wed"}, 600, 720),
			},
			want: []Clash{
				{First: "CSE2215 [A]", Second: "CSE2217 [B]", Day: "Wed"},
				{First: "CSE2215 [A]", Second: "MATH2205 [C]", Day: "Wed"},
				{First: "CSE2217 [B]", Second: "MATH2205 [C]", Day: "Wed"},
			},
		},
		{
			name:     "no sections",
			selected: nil,
			want:     []Clash{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindClashes(tt.selected)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindClashes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheckPrerequisites(t *testing.T) {
	prereqs := map[string][]string{
		"CSE2215": {"CSE1115"},
		"CSE2217": {"CSE2215"},
		"CSE1111": {"CSE1110"},
	}

	tests := []struct {
		name      string
		selected  []Section
		completed []string
		want      []UnmetPrerequisite
	}{
		{
			name:      "completed prerequisite satisfies",
			selected:  []Section{section("CSE2215", "A", []string{"Sat"}, 510, 590)},
			completed: []string{"CSE1115"},
			want:      []UnmetPrerequisite{},
		},
		{
			name: "co-enrollment in the same selection satisfies",
			selected: []Section{
				section("CSE2215", "A", []string{"Sat"}, 510, 590),
				section("CSE2217", "B", []string{"Sun"}, 510, 590),
			},
			completed: []string{"CSE1115"},
			want:      []UnmetPrerequisite{},
		},
		{
			name:     "unmet prerequisite is flagged",
			selected: []Section{section("CSE2217", "B", []string{"Sun"}, 510, 590)},
			want:     []UnmetPrerequisite{{CourseCode: "CSE2217", Prerequisite: "CSE2215"}},
		},
		{
			name: "two sections of a course flag once",
			selected: []Section{
				section("CSE1111", "A", []string{"Sat"}, 510, 590),
				section("CSE1111", "B", []string{"Sun"}, 510, 590),
			},
			want: []UnmetPrerequisite{{CourseCode: "CSE1111", Prerequisite: "CSE1110"}},
		},
		{
			name:      "completed codes are normalized",
			selected:  []Section{section("CSE2215", "A", []string{"Sat"}, 510, 590)},
			completed: []string{"cse 1115"},
			want:      []UnmetPrerequisite{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPrerequisites(tt.selected, prereqs, tt.completed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CheckPrerequisites() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	credits := map[string]float64{
		"CSE2215":  3,
		"CSE2217":  3,
		"CSE3521":  3,
		"CSE4509":  3,
		"MATH2205": 3,
		"ENG1013":  1.5,
	}
	prereqs := map[string][]string{"CSE2217": {"CSE2215"}}

	selected := []Section{
		section("CSE2215", "A", []string{"Sat", "Tue"}, 510, 590),
		section("CSE2217", "B", []string{"Sun", "Wed"}, 510, 590),
		section("CSE3521", "A", []string{"Sat", "Tue"}, 560, 640),
		section("CSE4509", "C", []string{"Mon"}, 600, 680),
		section("MATH2205", "A", []string{"Thu"}, 510, 590),
		section("ENG1013", "B", []string{"Fri"}, 510, 590),
	}

	res := Check(selected, credits, prereqs, nil)

	if want := 16.5; res.TotalCredits != want {
		t.Errorf("total credits = %v, want %v", res.TotalCredits, want)
	}
	if !res.HeavyLoad {
		t.Error("16.5 credits should trip the heavy-load warning")
	}
	if len(res.Clashes) != 1 || res.Clashes[0].First != "CSE2215 [A]" || res.Clashes[0].Second != "CSE3521 [A]" {
		t.Errorf("clashes = %+v, want CSE2215/CSE3521 overlap", res.Clashes)
	}
	if len(res.Unmet) != 0 {
		t.Errorf("unmet = %+v, want none (co-enrollment)", res.Unmet)
	}
}

func TestCheck_unknownCodesDegrade(t *testing.T) {
	selected := []Section{section("XYZ9999", "A", []string{"Sat"}, 510, 590)}
	res := Check(selected, nil, nil, nil)
	if res.TotalCredits != 0 {
		t.Errorf("total credits = %v, want 0 for unknown codes", res.TotalCredits)
	}
	if res.HeavyLoad {
		t.Error("no credits cannot be a heavy load")
	}
}
