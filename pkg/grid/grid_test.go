package grid

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tagtile/pkg/errors"
)

func TestPaperA4(t *testing.T) {
	p := A4(300)
	if p.Width != 2480 || p.Height != 3507 {
		t.Errorf("A4(300) = %dx%d, want 2480x3507", p.Width, p.Height)
	}
	if p.Name != "a4" {
		t.Errorf("Name = %q, want a4", p.Name)
	}
}

func TestPaper(t *testing.T) {
	tests := []struct {
		name    string
		paper   string
		dpi     int
		wantW   int
		wantH   int
		wantErr errors.Code
	}{
		{"a4 72dpi", "a4", 72, 595, 841, ""},
		{"upper case", "A4", 300, 2480, 3507, ""},
		{"letter", "letter", 100, 850, 1100, ""},
		{"legal", "Legal", 100, 850, 1400, ""},
		{"unknown", "b5", 300, 0, 0, errors.ErrCodeInvalidArgument},
		{"zero dpi", "a4", 0, 0, 0, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Paper(tt.paper, tt.dpi)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Paper(%q, %d) error = %v, want code %v", tt.paper, tt.dpi, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Paper(%q, %d) error = %v", tt.paper, tt.dpi, err)
			}
			if p.Width != tt.wantW || p.Height != tt.wantH {
				t.Errorf("Paper(%q, %d) = %dx%d, want %dx%d", tt.paper, tt.dpi, p.Width, p.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPaperNames(t *testing.T) {
	want := []string{"a3", "a4", "a5", "legal", "letter"}
	if diff := cmp.Diff(want, PaperNames()); diff != "" {
		t.Errorf("PaperNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanFourA4(t *testing.T) {
	g, err := Plan(4, A4(300))
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if g.Cols != 2 || g.Rows != 2 {
		t.Errorf("Plan(4) = %dx%d, want 2x2", g.Cols, g.Rows)
	}
}

func TestPlanProperties(t *testing.T) {
	pages := []PageSize{A4(300), A4(72), {Name: "square", Width: 100, Height: 100}}

	for _, page := range pages {
		for n := 1; n <= 36; n++ {
			g, err := Plan(n, page)
			if err != nil {
				t.Fatalf("Plan(%d) error: %v", n, err)
			}
			if g.Cols*g.Rows != n {
				t.Errorf("Plan(%d) = %dx%d, product != %d", n, g.Cols, g.Rows, n)
			}
			if g.Cols < 1 || g.Rows < 1 {
				t.Errorf("Plan(%d) = %dx%d, want both >= 1", n, g.Cols, g.Rows)
			}

			// Brute force over all factor pairs: nothing may beat the choice,
			// and an equal skew must not come from a smaller column count.
			for cols := 1; cols <= n; cols++ {
				if n%cols != 0 {
					continue
				}
				other := Grid{Cols: cols, Rows: n / cols, Page: page}
				if other.Skew() < g.Skew() {
					t.Errorf("Plan(%d) chose %dx%d (skew %d) but %dx%d has skew %d",
						n, g.Cols, g.Rows, g.Skew(), other.Cols, other.Rows, other.Skew())
				}
				if other.Skew() == g.Skew() && cols < g.Cols {
					t.Errorf("Plan(%d) tie should keep %d cols, got %d", n, cols, g.Cols)
				}
			}
		}
	}
}

func TestPlanTieKeepsFirst(t *testing.T) {
	// On square pages 1x2 and 2x1 have equal skew.
	g, err := Plan(2, PageSize{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if g.Cols != 1 || g.Rows != 2 {
		t.Errorf("Plan(2) on square pages = %dx%d, want 1x2", g.Cols, g.Rows)
	}
}

func TestPlanInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Plan(n, A4(300)); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("Plan(%d) error = %v, want INVALID_ARGUMENT", n, err)
		}
	}
}

func TestCandidates(t *testing.T) {
	page := PageSize{Width: 10, Height: 20}
	got, err := Candidates(6, page)
	if err != nil {
		t.Fatal(err)
	}
	want := []Grid{
		{Cols: 1, Rows: 6, Page: page},
		{Cols: 2, Rows: 3, Page: page},
		{Cols: 3, Rows: 2, Page: page},
		{Cols: 6, Rows: 1, Page: page},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates(6) mismatch (-want +got):\n%s", diff)
	}
}

func TestGridGeometry(t *testing.T) {
	g := Grid{Cols: 3, Rows: 2, Page: PageSize{Width: 10, Height: 20}}

	if g.Pages() != 6 {
		t.Errorf("Pages() = %d, want 6", g.Pages())
	}
	if w, h := g.CanvasSize(); w != 30 || h != 40 {
		t.Errorf("CanvasSize() = %dx%d, want 30x40", w, h)
	}
	if got, want := g.PageRect(1, 2), image.Rect(20, 20, 30, 40); got != want {
		t.Errorf("PageRect(1, 2) = %v, want %v", got, want)
	}
	if g.Skew() != 10 {
		t.Errorf("Skew() = %d, want 10", g.Skew())
	}
}
