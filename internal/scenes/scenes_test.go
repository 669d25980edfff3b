package scenes

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestBuildUnknownScene(t *testing.T) {
	if _, _, err := Build("does-not-exist", 1); err == nil {
		t.Fatal("expected an error for an unknown scene")
	}
}

func TestBuiltinScenesRegistered(t *testing.T) {
	for _, name := range []string{"solar", "binary", "cluster"} {
		if _, ok := Scenes()[name]; !ok {
			t.Fatalf("scene %q is not registered", name)
		}
	}
}

func TestSolarSceneOrbits(t *testing.T) {
	reg, p, err := Build("solar", 0)
	if err != nil {
		t.Fatalf("Build(solar): %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("solar params: %v", err)
	}
	if reg.Len() != 9 {
		t.Fatalf("solar scene has %d bodies, want 9", reg.Len())
	}

	sun := reg.At(0)
	if sun.Name != "sun" {
		t.Fatalf("first body is %q, want the sun", sun.Name)
	}

	for i := 1; i < reg.Len(); i++ {
		b := reg.At(i)
		r := r2.Norm(b.Pos)
		want := CircularSpeed(p.G, sun.Mass, r)
		if got := r2.Norm(b.Vel); !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-9) {
			t.Fatalf("%s: speed %v, want circular speed %v", b.Name, got, want)
		}
		// Circular orbit velocity is perpendicular to the radius vector.
		if dot := r2.Dot(b.Pos, b.Vel); math.Abs(dot) > 1e-9*r*r2.Norm(b.Vel) {
			t.Fatalf("%s: velocity is not perpendicular to position (dot %v)", b.Name, dot)
		}
	}
}

func TestBinarySceneBalancesMomentum(t *testing.T) {
	reg, _, err := Build("binary", 0)
	if err != nil {
		t.Fatalf("Build(binary): %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("binary scene has %d bodies, want 2", reg.Len())
	}

	var p r2.Vec
	for _, b := range reg.Bodies() {
		p = r2.Add(p, r2.Scale(b.Mass, b.Vel))
	}
	if r2.Norm(p) > 1e-9 {
		t.Fatalf("total momentum %v, want zero", p)
	}
}

func TestClusterSceneDeterministicPerSeed(t *testing.T) {
	a, _, err := Build("cluster", 7)
	if err != nil {
		t.Fatalf("Build(cluster): %v", err)
	}
	b, _, err := Build("cluster", 7)
	if err != nil {
		t.Fatalf("Build(cluster): %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("same seed produced %d and %d bodies", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i).Pos != b.At(i).Pos || a.At(i).Mass != b.At(i).Mass {
			t.Fatalf("same seed diverged at body %d", i)
		}
	}

	c, _, err := Build("cluster", 8)
	if err != nil {
		t.Fatalf("Build(cluster): %v", err)
	}
	same := true
	for i := 1; i < a.Len(); i++ {
		if a.At(i).Pos != c.At(i).Pos {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced an identical disk")
	}
}
