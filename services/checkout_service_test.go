package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"naoh-aquatics/models"
)

func TestSummarizeAddOns(t *testing.T) {
	extra := models.AddOn{ID: "extra", Name: "Extra Scoop", Price: d("5.00")}
	stone := models.AddOn{ID: "air-stone", Name: "Air Stone", Price: d("20.00")}

	assert.Equal(t, "", summarizeAddOns(nil))
	assert.Equal(t, "Extra Scoop", summarizeAddOns([]models.AddOn{extra}))
	assert.Equal(t, "Extra Scoop x2, Air Stone", summarizeAddOns([]models.AddOn{extra, extra, stone}))
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString(""))

	v := optionalString("gcash")
	if assert.NotNil(t, v) {
		assert.Equal(t, "gcash", *v)
	}
}
