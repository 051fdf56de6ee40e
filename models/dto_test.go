package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRequestValidate(t *testing.T) {
	req := CreateOrderRequest{
		CustID:   "c1",
		Services: []LineItem{{Name: "Haircut", Cost: 20, Quantity: 1}},
	}
	assert.Empty(t, req.Validate())

	req = CreateOrderRequest{
		Services: []LineItem{{Name: "", Cost: -5, Quantity: 1}},
	}
	errs := req.Validate()
	assert.Len(t, errs, 3)

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["custid"])
	assert.True(t, fields["services"])
}

func TestRegisterUserRequestValidate(t *testing.T) {
	req := RegisterUserRequest{
		Name:     "Asha",
		Gmail:    "asha@example.com",
		Password: "secret1",
		MobileNo: "9990001111",
		Usertype: "business",
	}
	assert.Empty(t, req.Validate())

	req.Gmail = "not-an-email"
	req.Password = "tiny"
	errs := req.Validate()
	assert.Len(t, errs, 2)
}

func TestSearchFiltersNormalize(t *testing.T) {
	f := SearchFilters{Page: 0, Limit: -4}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	f = SearchFilters{Page: 3, Limit: 25}
	f.Normalize()
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 25, f.Limit)
}

func TestSearchFiltersCacheKeyIsDeterministic(t *testing.T) {
	a := SearchFilters{QueryString: "salon", Location: "Pune", Page: 2, Limit: 10}
	b := SearchFilters{Location: "Pune", QueryString: "salon", Limit: 10, Page: 2}
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c := SearchFilters{QueryString: "salon", Location: "Pune", Page: 3, Limit: 10}
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestAppErrorKinds(t *testing.T) {
	assert.Equal(t, ErrKindMissingField, KindOf(MissingField("business id")))
	assert.Equal(t, ErrKindNotFound, KindOf(NotFound("order")))
	assert.Equal(t, ErrKindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, ErrKindUpstream, KindOf(Upstream("db failed", nil)))
}
