package config

import (
	"testing"

	"github.com/spf13/viper"
)

func Test_New_defaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if c.MaxLength != 6 {
		t.Errorf("MaxLength = %d, want 6", c.MaxLength)
	}
	if c.Alpha != 0.99 {
		t.Errorf("Alpha = %g, want 0.99", c.Alpha)
	}
	if c.Beta != 0 {
		t.Errorf("Beta = %g, want 0", c.Beta)
	}
	if c.Cleavage != "pcm" {
		t.Errorf("Cleavage = %q, want pcm", c.Cleavage)
	}
	if c.Binding != "syfpeithi" {
		t.Errorf("Binding = %q, want syfpeithi", c.Binding)
	}
	if c.Threshold != 20 {
		t.Errorf("Threshold = %g, want 20", c.Threshold)
	}
	if c.Threads < 1 {
		t.Errorf("Threads = %d, want >= 1", c.Threads)
	}
}

func Test_New_rejectsBadWeights(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("alpha", -0.5)

	if _, err := New(); err == nil {
		t.Error("negative alpha should fail")
	}

	viper.Reset()
	SetDefaults()
	viper.Set("max-length", -3)

	if _, err := New(); err == nil {
		t.Error("negative max spacer length should fail")
	}
}
