package field

import "testing"

func TestPointerDefaultsToCentre(t *testing.T) {
	e := newTestEngine(t, nil)
	x, y := e.Pointer().Position()
	if x != 400 || y != 300 {
		t.Fatalf("default position = (%g,%g), want (400,300)", x, y)
	}

	e.Configure(1000, 500, 2)
	if x, y = e.Pointer().Position(); x != 500 || y != 250 {
		t.Fatalf("default after resize = (%g,%g), want (500,250)", x, y)
	}
}

func TestPointerLatestWins(t *testing.T) {
	var p Pointer
	p.SetDefault(10, 10)
	p.Move(1, 2)
	p.Move(3, 4)
	p.SetDefault(99, 99)
	if x, y := p.Position(); x != 3 || y != 4 {
		t.Fatalf("position = (%g,%g), want (3,4)", x, y)
	}
	p.Press()
	p.Press()
	p.Release()
	if p.Pressed() {
		t.Fatal("pressed after release")
	}
	p.Press()
	if !p.Pressed() {
		t.Fatal("not pressed after press")
	}
}
