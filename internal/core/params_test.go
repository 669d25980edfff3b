package core

import "testing"

func TestDefaultParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero G", func(p *Params) { p.G = 0 }},
		{"negative G", func(p *Params) { p.G = -1 }},
		{"zero min separation", func(p *Params) { p.MinSeparation = 0 }},
		{"inverted camera range", func(p *Params) { p.MaxCameraDistance = p.MinCameraDistance / 2 }},
		{"zero min camera distance", func(p *Params) { p.MinCameraDistance = 0 }},
		{"inverted base scale range", func(p *Params) { p.BaseScaleMax = p.BaseScaleMin / 10 }},
		{"radius ratio below one", func(p *Params) { p.MinRadiusRatio = 0.5 }},
		{"inverted radius ratio range", func(p *Params) { p.MaxRadiusRatio = p.MinRadiusRatio / 2 }},
		{"zero dt", func(p *Params) { p.Dt = 0 }},
		{"zero substeps", func(p *Params) { p.SubstepsPerTick = 0 }},
	}
	for _, tc := range cases {
		p := DefaultParams()
		tc.mutate(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
	}
}
