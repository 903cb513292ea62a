package main

import (
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/core/course"
	"github.com/campuskit/backend/core/planner"
	pgrepos "github.com/campuskit/backend/storage/database/pg"
)

// seedFile is the YAML layout consumed by `admin seed`. Either section may be
// omitted.
type seedFile struct {
	Courses []struct {
		Code          string   `yaml:"code"`
		Title         string   `yaml:"title"`
		Credits       float64  `yaml:"credits"`
		Department    string   `yaml:"department"`
		Description   string   `yaml:"description"`
		Prerequisites []string `yaml:"prerequisites"`
	} `yaml:"courses"`

	Datasets []struct {
		Trimester string `yaml:"trimester"`
		Sections  []struct {
			CourseCode string   `yaml:"course_code"`
			Section    string   `yaml:"section"`
			Faculty    string   `yaml:"faculty"`
			Days       []string `yaml:"days"`
			StartMin   int      `yaml:"start_min"`
			EndMin     int      `yaml:"end_min"`
			Room       string   `yaml:"room"`
			Capacity   int      `yaml:"capacity"`
		} `yaml:"sections"`
	} `yaml:"datasets"`
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file.yml>",
		Short: "Load courses and section datasets from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "reading seed file")
			}
			var seed seedFile
			if err = yaml.Unmarshal(raw, &seed); err != nil {
				return errors.Wrap(err, "parsing seed file")
			}

			db, err := openDB(core.NewConfig())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			validate := validator.New()
			core.InitValidators(validate, newTranslator())

			ctx := cmd.Context()
			courseSvc := course.NewService(pgrepos.NewCourseRepository(db))
			plannerSvc := planner.NewService(pgrepos.NewPlannerRepository(db))

			if len(seed.Courses) > 0 {
				infoColor.Printf("seeding %d courses\n", len(seed.Courses))
				bar := progressbar.Default(int64(len(seed.Courses)))
				for _, c := range seed.Courses {
					nc := course.NewCourse{
						Code:          c.Code,
						Title:         c.Title,
						Credits:       c.Credits,
						Department:    c.Department,
						Description:   c.Description,
						Prerequisites: c.Prerequisites,
					}
					if err = nc.Validate(validate); err != nil {
						return errors.Wrapf(err, "course %q", c.Code)
					}
					if _, err = courseSvc.Create(ctx, nc); err != nil {
						if core.IsValidationError(err) {
							// duplicate code; already seeded
							_ = bar.Add(1)
							continue
						}
						return errors.Wrapf(err, "course %q", c.Code)
					}
					_ = bar.Add(1)
				}
			}

			if len(seed.Datasets) > 0 {
				infoColor.Printf("seeding %d section datasets\n", len(seed.Datasets))
				bar := progressbar.Default(int64(len(seed.Datasets)))
				for _, d := range seed.Datasets {
					nd := planner.NewDataset{Trimester: d.Trimester}
					for _, s := range d.Sections {
						nd.Sections = append(nd.Sections, planner.NewSection{
							CourseCode: s.CourseCode,
							Section:    s.Section,
							Faculty:    s.Faculty,
							Days:       s.Days,
							StartMin:   s.StartMin,
							EndMin:     s.EndMin,
							Room:       s.Room,
							Capacity:   s.Capacity,
						})
					}
					if err = nd.Validate(validate); err != nil {
						return errors.Wrapf(err, "dataset %q", d.Trimester)
					}
					if _, err = plannerSvc.Create(ctx, nd); err != nil {
						return errors.Wrapf(err, "dataset %q", d.Trimester)
					}
					_ = bar.Add(1)
				}
			}

			successColor.Println("seeding done")
			return nil
		},
	}
	return cmd
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
