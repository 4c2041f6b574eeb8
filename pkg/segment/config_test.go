package segment

import (
	"strings"
	"testing"
)

func validConfig() *SurveyConfig {
	return testConfig()
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Segmentation.DefaultSegment = "Terminated"
	cfg.Segmentation.DefaultStatus = "terminated"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SurveyConfig)
		wantErr string
	}{
		{
			name:    "no questions",
			mutate:  func(c *SurveyConfig) { c.Questions = nil },
			wantErr: "at least one question",
		},
		{
			name:    "duplicate question key",
			mutate:  func(c *SurveyConfig) { c.Questions[1].Key = "age" },
			wantErr: "duplicate question key",
		},
		{
			name:    "unknown answer type",
			mutate:  func(c *SurveyConfig) { c.Questions[0].Type = "multi" },
			wantErr: "unknown answer type",
		},
		{
			name: "ambiguous partial titles",
			mutate: func(c *SurveyConfig) {
				c.Questions[1].PartialTitle = "old are you"
			},
			wantErr: "ambiguous partial titles",
		},
		{
			name: "rule references unmapped key",
			mutate: func(c *SurveyConfig) {
				c.Segmentation.Rules[0].Conditions["income"] = Condition{Operator: OperatorIn, Values: []string{"High"}}
			},
			wantErr: "unmapped question key",
		},
		{
			name: "unknown operator",
			mutate: func(c *SurveyConfig) {
				c.Segmentation.Rules[0].Conditions["age"] = Condition{Operator: "matches", Values: []string{"x"}}
			},
			wantErr: "unknown operator",
		},
		{
			name: "not_contains without exclude list",
			mutate: func(c *SurveyConfig) {
				c.Segmentation.Rules[0].Conditions["age"] = Condition{Operator: OperatorNotContains}
			},
			wantErr: "exclude list",
		},
		{
			name: "unknown rule status",
			mutate: func(c *SurveyConfig) {
				c.Segmentation.Rules[0].Status = "done"
			},
			wantErr: "unknown status",
		},
		{
			name: "missing default segment",
			mutate: func(c *SurveyConfig) {
				c.Segmentation.DefaultSegment = ""
			},
			wantErr: "default_segment",
		},
		{
			name: "unknown default status",
			mutate: func(c *SurveyConfig) {
				c.Segmentation.DefaultStatus = "finished"
			},
			wantErr: "default_status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
