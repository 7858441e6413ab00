package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaCascadeRules(t *testing.T) {
	// Every clinic-scoped table and every user-owned auth table must cascade
	// from its parent.
	cascading := []string{
		"user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE",
		"clinic_id UUID NOT NULL REFERENCES clinics (id) ON DELETE CASCADE",
		"doctor_id UUID NOT NULL REFERENCES doctors (id) ON DELETE CASCADE",
		"patient_id UUID NOT NULL REFERENCES patients (id) ON DELETE CASCADE",
	}
	for _, clause := range cascading {
		assert.Contains(t, Schema, clause)
	}
	assert.Equal(t, 4, strings.Count(Schema, "REFERENCES clinics (id) ON DELETE CASCADE"),
		"doctors, patients, appointments and memberships all hang off clinics")
	assert.Equal(t, 3, strings.Count(Schema, "REFERENCES users (id) ON DELETE CASCADE"),
		"sessions, accounts and memberships all hang off users")
}

func TestSchemaUniqueness(t *testing.T) {
	assert.Contains(t, Schema, "email TEXT NOT NULL UNIQUE")
	assert.Contains(t, Schema, "token TEXT NOT NULL UNIQUE")
	assert.Contains(t, Schema, "UNIQUE (user_id, clinic_id)")
}

func TestSchemaPatientSexEnum(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TYPE patient_sex AS ENUM ('male', 'female')")
	assert.Contains(t, Schema, "sex patient_sex NOT NULL")
}
