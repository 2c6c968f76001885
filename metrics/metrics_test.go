package metrics

import (
	"testing"

	tokenizer "github.com/fumiya-kume/felang-tokenizer"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestObserveRelexUpdatesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveRelex(tokenizer.Metrics{
		TokensAdded:         2,
		TokensRemoved:       1,
		CharactersRescanned: 40,
		EfficiencyRatio:     0.1,
	})

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)

	found := map[string]bool{}
	for _, mf := range metricFamilies {
		found[mf.GetName()] = true
	}
	require.True(t, found["tokenizer_relex_tokens_added_total"])
	require.True(t, found["tokenizer_relex_efficiency_ratio"])
}

func TestObserveDiagnosticsIncrementsPerSeverity(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveDiagnostics([]tokenizer.Diagnostic{
		{Severity: tokenizer.SeverityError},
		{Severity: tokenizer.SeverityError},
		{Severity: tokenizer.SeverityFatal},
	})

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	var diagFamily *dto.MetricFamily
	for _, mf := range metricFamilies {
		if mf.GetName() == "tokenizer_scan_diagnostics_total" {
			diagFamily = mf
		}
	}
	require.NotNil(t, diagFamily)
	require.Len(t, diagFamily.Metric, 2) // "error" and "fatal" label values
}
