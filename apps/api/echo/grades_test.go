package echoapi

import (
	"net/http"
	"testing"

	"github.com/campuskit/backend/core/grading"
)

func Test_gradesApi_scale(t *testing.T) {
	deps := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/grades/scale")
	deps.app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantData: marshallObj(t, grading.Table)}, rec)
}

func Test_gradesApi_calculate(t *testing.T) {
	deps := setup(t)

	body := marshallObj(t, CGPARequest{
		Trimesters: []grading.TrimesterInput{
			{Name: "Spring 2024", Courses: []grading.CourseInput{
				{Name: "CSE1110", Grade: "A", Credit: 3},
				{Name: "ENG1011", Grade: "B+", Credit: 3},
			}},
		},
	})
	want := CGPAResponse{
		Results: []grading.CGPAResult{
			{TrimesterName: "Spring 2024", TrimesterCredits: 6, GPA: 3.67, CGPA: 3.67, TotalCredits: 6, EarnedCredits: 6},
		},
		CompletedCourses: []grading.CompletedCourse{
			{Code: "CSE1110", Grade: "A", Point: 4},
			{Code: "ENG1011", Grade: "B+", Point: 3.33},
		},
	}

	tests := []httpTest{
		{name: "OK", body: body, wantData: marshallObj(t, want)},
		{
			name:     "at least one gradable course required",
			body:     marshallObj(t, CGPARequest{Trimesters: []grading.TrimesterInput{{Name: "Spring 2024"}}}),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: "at least one course with a grade and credits is required"}),
		},
		{
			name:     "trimesters required",
			body:     marshallObj(t, CGPARequest{}),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown grade letter rejected",
			body: marshallObj(t, CGPARequest{
				Trimesters: []grading.TrimesterInput{
					{Name: "Spring 2024", Courses: []grading.CourseInput{{Name: "CSE1110", Grade: "Z", Credit: 3}}},
				},
			}),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "retake without previous grade rejected",
			body: marshallObj(t, CGPARequest{
				Trimesters: []grading.TrimesterInput{
					{Name: "Spring 2024", Courses: []grading.CourseInput{
						{Name: "CSE1110", Grade: "A", Credit: 3, IsRetake: true},
					}},
				},
			}),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "prior CGPA above the scale rejected",
			body:     marshallObj(t, CGPARequest{PriorCGPA: 4.2, Trimesters: []grading.TrimesterInput{{Name: "Spring 2024"}}}),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/grades/cgpa", tt.body)
			deps.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
