package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookMetrics(reg)

	m.Observe("add", "added")
	m.Observe("add", "added")
	m.Observe("add", "duplicate_rejected")
	m.SetContacts(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("add", "added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("add", "duplicate_rejected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Contacts))

	n, err := testutil.GatherAndCount(reg, "addressbook_operations_total", "addressbook_contacts")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBookMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewBookMetrics(reg)
	second := NewBookMetrics(reg)

	second.Observe("delete", "deleted")
	assert.Equal(t, 1.0, testutil.ToFloat64(first.Operations.WithLabelValues("delete", "deleted")))
}

func TestBookMetrics_NilSafe(t *testing.T) {
	var m *BookMetrics
	m.Observe("add", "added")
	m.SetContacts(1)

	unregistered := NewBookMetrics(nil)
	unregistered.Observe("add", "added")
	assert.Equal(t, 1.0, testutil.ToFloat64(unregistered.Operations.WithLabelValues("add", "added")))
}
