package wprefactor_test

import (
	"testing"

	"github.com/fwojciec/wprefactor"
	"github.com/stretchr/testify/assert"
)

func TestLineRange_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       wprefactor.LineRange
		wantErr bool
	}{
		{"valid", wprefactor.LineRange{Start: 832, End: 1097}, false},
		{"empty window", wprefactor.LineRange{Start: 5, End: 5}, false},
		{"zero start", wprefactor.LineRange{Start: 0, End: 3}, true},
		{"end before start", wprefactor.LineRange{Start: 10, End: 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.r.Validate()
			if tt.wantErr {
				assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLineRange_Slice(t *testing.T) {
	t.Parallel()

	text := "l1\nl2\nl3\nl4\nl5\n"

	tests := []struct {
		name string
		r    wprefactor.LineRange
		want string
	}{
		{"end is exclusive", wprefactor.LineRange{Start: 2, End: 4}, "l2\nl3\n"},
		{"single line", wprefactor.LineRange{Start: 5, End: 6}, "l5\n"},
		{"end clamped to length", wprefactor.LineRange{Start: 4, End: 100}, "l4\nl5\n"},
		{"start past end of text", wprefactor.LineRange{Start: 9, End: 12}, ""},
		{"empty window", wprefactor.LineRange{Start: 3, End: 3}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.r.Slice(text))
		})
	}

	t.Run("last line without terminator", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "b", (&wprefactor.LineRange{Start: 2, End: 3}).Slice("a\nb"))
	})
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source and output", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, (&wprefactor.Page{OutputPath: "out.html"}).Validate())
		assert.Error(t, (&wprefactor.Page{SourcePath: "in.html"}).Validate())
		assert.NoError(t, (&wprefactor.Page{SourcePath: "in.html", OutputPath: "out.html"}).Validate())
	})

	t.Run("checks the line range", func(t *testing.T) {
		t.Parallel()

		p := &wprefactor.Page{SourcePath: "in.html", OutputPath: "out.html", Lines: &wprefactor.LineRange{Start: 0, End: 1}}

		assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(p.Validate()))
	})
}

func TestPage_SourceFolder(t *testing.T) {
	t.Parallel()

	p := &wprefactor.Page{SourcePath: "core/Cloud/Device-Management/Device Management.html"}

	assert.Equal(t, "Device Management", p.SourceFolder())
}

func validPlan() *wprefactor.Plan {
	return &wprefactor.Plan{
		Name:      "graphic",
		Template:  wprefactor.TemplateGraphic,
		Extractor: wprefactor.ExtractorAnchor,
		Pages: []*wprefactor.Page{
			{SourcePath: "a.html", OutputPath: "out/a.html"},
			{SourcePath: "b.html", OutputPath: "out/b.html"},
		},
	}
}

func TestPlan_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		modify   func(p *wprefactor.Plan)
		wantCode string
	}{
		{"valid", func(*wprefactor.Plan) {}, ""},
		{"missing name", func(p *wprefactor.Plan) { p.Name = "" }, wprefactor.EINVALID},
		{"unknown template", func(p *wprefactor.Plan) { p.Template = "blog" }, wprefactor.EINVALID},
		{"unknown extractor", func(p *wprefactor.Plan) { p.Extractor = "xpath" }, wprefactor.EINVALID},
		{"no pages", func(p *wprefactor.Plan) { p.Pages = nil }, wprefactor.EINVALID},
		{"invalid page", func(p *wprefactor.Plan) { p.Pages[1].OutputPath = "" }, wprefactor.EINVALID},
		{"lines extractor without range", func(p *wprefactor.Plan) { p.Extractor = wprefactor.ExtractorLines }, wprefactor.EINVALID},
		{"duplicate output", func(p *wprefactor.Plan) { p.Pages[1].OutputPath = "out/a.html" }, wprefactor.ECONFLICT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validPlan()
			tt.modify(p)

			assert.Equal(t, tt.wantCode, wprefactor.ErrorCode(p.Validate()))
		})
	}
}

func TestMigration_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&wprefactor.Migration{OutputPath: "out.html"}).Validate())
	assert.Error(t, (&wprefactor.Migration{SourcePath: "in.html"}).Validate())
	assert.NoError(t, (&wprefactor.Migration{SourcePath: "in.html", OutputPath: "out.html"}).Validate())
}
