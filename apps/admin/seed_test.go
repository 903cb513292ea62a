package main

import (
	"testing"

	"gopkg.in/yaml.v2"
)

func Test_seedFile_parse(t *testing.T) {
	raw := []byte(`
courses:
  - code: CSE1110
    title: Introduction to Computer Systems
    credits: 1
    department: CSE
  - code: CSE2215
    title: Data Structures and Algorithms I
    credits: 3
    department: CSE
    prerequisites: [CSE1115]

datasets:
  - trimester: Fall 2026
    sections:
      - course_code: CSE2215
        section: A
        faculty: MSI
        days: [Sat, Tue]
        start_min: 510
        end_min: 590
        room: "201"
        capacity: 40
`)

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}

	if len(seed.Courses) != 2 {
		t.Fatalf("courses = %d, want 2", len(seed.Courses))
	}
	if seed.Courses[1].Code != "CSE2215" || seed.Courses[1].Credits != 3 {
		t.Errorf("course[1] = %+v", seed.Courses[1])
	}
	if len(seed.Courses[1].Prerequisites) != 1 || seed.Courses[1].Prerequisites[0] != "CSE1115" {
		t.Errorf("prerequisites = %v", seed.Courses[1].Prerequisites)
	}

	if len(seed.Datasets) != 1 {
		t.Fatalf("datasets = %d, want 1", len(seed.Datasets))
	}
	ds := seed.Datasets[0]
	if ds.Trimester != "Fall 2026" || len(ds.Sections) != 1 {
		t.Fatalf("dataset = %+v", ds)
	}
	sec := ds.Sections[0]
	if sec.CourseCode != "CSE2215" || sec.StartMin != 510 || sec.EndMin != 590 || len(sec.Days) != 2 {
		t.Errorf("section = %+v", sec)
	}
}

func Test_seedFile_parseEmpty(t *testing.T) {
	var seed seedFile
	if err := yaml.Unmarshal([]byte(""), &seed); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if len(seed.Courses) != 0 || len(seed.Datasets) != 0 {
		t.Errorf("empty file should parse to an empty seed: %+v", seed)
	}
}
