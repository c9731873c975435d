package kb

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "complete config",
			config: Config{
				KnowledgeBaseID: "KB12345678",
				DataSourceID:    "DS12345678",
			},
			wantErr: false,
		},
		{
			name: "missing knowledge base id",
			config: Config{
				DataSourceID: "DS12345678",
			},
			wantErr: true,
		},
		{
			name: "missing data source id",
			config: Config{
				KnowledgeBaseID: "KB12345678",
			},
			wantErr: true,
		},
		{
			name:    "empty config",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := []Status{StatusIndexed, StatusPartiallyIndexed, StatusFailed, StatusIgnored, StatusNotFound}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("Status(%q).Terminal() = false, want true", s)
		}
	}

	pending := []Status{StatusStarting, StatusPending, StatusInProgress, Status("SOMETHING_NEW")}
	for _, s := range pending {
		if s.Terminal() {
			t.Errorf("Status(%q).Terminal() = true, want false", s)
		}
	}
}
