package grading

import (
	"reflect"
	"testing"
)

func course(name, grade string, credit float64) CourseInput {
	return CourseInput{Name: name, Grade: grade, Credit: credit}
}

func TestCalculateCGPA(t *testing.T) {
	tests := []struct {
		name         string
		trimesters   []TrimesterInput
		priorCredits float64
		priorCGPA    float64
		want         []CGPAResult
	}{
		{
			name: "straight As",
			trimesters: []TrimesterInput{
				{Name: "Spring 2024", Courses: []CourseInput{
					course("CSE1110", "A", 3),
					course("ENG1011", "A", 3),
				}},
			},
			want: []CGPAResult{
				{TrimesterName: "Spring 2024", TrimesterCredits: 6, GPA: 4, CGPA: 4, TotalCredits: 6, EarnedCredits: 6},
			},
		},
		{
			name: "mixed grades accumulate across trimesters",
			trimesters: []TrimesterInput{
				{Name: "Spring 2024", Courses: []CourseInput{
					course("CSE1110", "A", 3),
					course("ENG1011", "B+", 3),
					course("MAT1101", "B", 3),
				}},
				{Name: "Summer 2024", Courses: []CourseInput{
					course("CSE1111", "A-", 3),
					course("PHY1101", "C", 3),
					course("BIO1101", "F", 2),
				}},
			},
			want: []CGPAResult{
				{TrimesterName: "Spring 2024", TrimesterCredits: 9, GPA: 3.44, CGPA: 3.44, TotalCredits: 9, EarnedCredits: 9},
				{TrimesterName: "Summer 2024", TrimesterCredits: 8, GPA: 2.13, CGPA: 2.82, TotalCredits: 17, EarnedCredits: 15},
			},
		},
		{
			name: "withdrawals and incompletes are skipped entirely",
			trimesters: []TrimesterInput{
				{Name: "Fall 2024", Courses: []CourseInput{
					course("CSE2215", "A", 3),
					course("MAT2205", "W", 3),
					course("PHY2105", "I", 3),
				}},
			},
			want: []CGPAResult{
				{TrimesterName: "Fall 2024", TrimesterCredits: 3, GPA: 4, CGPA: 4, TotalCredits: 3, EarnedCredits: 3},
			},
		},
		{
			name: "trimester with only withdrawals keeps the running CGPA",
			trimesters: []TrimesterInput{
				{Name: "Spring 2024", Courses: []CourseInput{course("CSE1110", "B", 3)}},
				{Name: "Summer 2024", Courses: []CourseInput{course("MAT1101", "W", 3)}},
			},
			want: []CGPAResult{
				{TrimesterName: "Spring 2024", TrimesterCredits: 3, GPA: 3, CGPA: 3, TotalCredits: 3, EarnedCredits: 3},
				{TrimesterName: "Summer 2024", TrimesterCredits: 0, GPA: 0, CGPA: 3, TotalCredits: 3, EarnedCredits: 3},
			},
		},
		{
			name: "failed credits stay in the denominator but earn nothing",
			trimesters: []TrimesterInput{
				{Name: "Fall 2024", Courses: []CourseInput{
					course("CSE1115", "A", 3),
					course("MAT2205", "F", 3),
				}},
			},
			want: []CGPAResult{
				{TrimesterName: "Fall 2024", TrimesterCredits: 6, GPA: 2, CGPA: 2, TotalCredits: 6, EarnedCredits: 3},
			},
		},
		{
			name: "retake counts once with the latest grade",
			trimesters: []TrimesterInput{
				{Name: "Spring 2025", Courses: []CourseInput{
					{Name: "CSE1110", Grade: "A", Credit: 3, IsRetake: true, PreviousGrade: "F"},
				}},
			},
			want: []CGPAResult{
				{TrimesterName: "Spring 2025", TrimesterCredits: 3, GPA: 4, CGPA: 4, TotalCredits: 3, EarnedCredits: 3},
			},
		},
		{
			name: "prior standing seeds the cumulative series",
			trimesters: []TrimesterInput{
				{Name: "Fall 2025", Courses: []CourseInput{course("CSE3411", "A", 3)}},
			},
			priorCredits: 30,
			priorCGPA:    3.5,
			want: []CGPAResult{
				{TrimesterName: "Fall 2025", TrimesterCredits: 3, GPA: 4, CGPA: 3.55, TotalCredits: 33, EarnedCredits: 33},
			},
		},
		{
			name: "mid-edit rows without a grade or credits are ignored",
			trimesters: []TrimesterInput{
				{Name: "Spring 2024", Courses: []CourseInput{
					course("CSE1110", "A", 3),
					course("ENG1011", "", 3),
					course("MAT1101", "B", 0),
				}},
			},
			want: []CGPAResult{
				{TrimesterName: "Spring 2024", TrimesterCredits: 3, GPA: 4, CGPA: 4, TotalCredits: 3, EarnedCredits: 3},
			},
		},
		{
			name:       "no trimesters",
			trimesters: nil,
			want:       []CGPAResult{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCGPA(tt.trimesters, tt.priorCredits, tt.priorCGPA)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CalculateCGPA() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateCGPA_bounds(t *testing.T) {
	trimesters := []TrimesterInput{
		{Name: "Spring 2024", Courses: []CourseInput{
			course("CSE1110", "A", 3),
			course("ENG1011", "F", 3),
			course("MAT1101", "C-", 2),
		}},
		{Name: "Summer 2024", Courses: []CourseInput{
			course("CSE1111", "D", 4.5),
			course("PHY1101", "B-", 1),
		}},
	}
	for _, res := range CalculateCGPA(trimesters, 12, 2.75) {
		if res.GPA < 0 || res.GPA > 4 {
			t.Errorf("GPA out of range: %v", res.GPA)
		}
		if res.CGPA < 0 || res.CGPA > 4 {
			t.Errorf("CGPA out of range: %v", res.CGPA)
		}
		if res.EarnedCredits > res.TotalCredits {
			t.Errorf("earned %v exceeds total %v", res.EarnedCredits, res.TotalCredits)
		}
	}
}

func TestCompletedCourses(t *testing.T) {
	tests := []struct {
		name       string
		trimesters []TrimesterInput
		want       []CompletedCourse
	}{
		{
			name: "best grade wins over a later worse retake",
			trimesters: []TrimesterInput{
				{Courses: []CourseInput{course("CSE1110", "A", 3)}},
				{Courses: []CourseInput{course("CSE1110", "C", 3)}},
			},
			want: []CompletedCourse{{Code: "CSE1110", Grade: "A", Point: 4}},
		},
		{
			name: "a passing retake replaces an earlier fail",
			trimesters: []TrimesterInput{
				{Courses: []CourseInput{course("CSE1110", "F", 3)}},
				{Courses: []CourseInput{course("CSE1110", "B", 3)}},
			},
			want: []CompletedCourse{{Code: "CSE1110", Grade: "B", Point: 3}},
		},
		{
			name: "non-passing grades never complete a course",
			trimesters: []TrimesterInput{
				{Courses: []CourseInput{
					course("CSE1110", "F", 3),
					course("MAT1101", "W", 3),
					course("PHY1101", "I", 3),
				}},
			},
			want: []CompletedCourse{},
		},
		{
			name: "codes are normalized and first-seen order is kept",
			trimesters: []TrimesterInput{
				{Courses: []CourseInput{
					course("cse 1110", "B", 3),
					course("ENG1011", "A", 3),
					course("CSE1110", "A-", 3),
				}},
			},
			want: []CompletedCourse{
				{Code: "CSE1110", Grade: "A-", Point: 3.67},
				{Code: "ENG1011", Grade: "A", Point: 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletedCourses(tt.trimesters)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CompletedCourses() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
