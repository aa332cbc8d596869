package cgrates

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// check is a single required argument test, ok=false means the argument is missing
type check struct {
	name string
	ok   bool
}

func present(name, val string) check { return check{name: name, ok: val != ""} }

func given(name string, ok bool) check { return check{name: name, ok: ok} }

// validate collects all missing arguments into a single error
func validate(method string, checks ...check) error {
	var errs *multierror.Error
	for _, c := range checks {
		if !c.ok {
			errs = multierror.Append(errs, errors.Wrap(ErrMissingArgument, c.name))
		}
	}
	if errs == nil {
		return nil
	}
	return errors.Wrapf(errs, "invalid arguments for %s", method)
}

// merge makes a new parameter object from extra and explicit fields, explicit fields win on collision
func merge(explicit, extra Params) Params {
	res := make(Params, len(explicit)+len(extra))
	for k, v := range extra {
		res[k] = v
	}
	for k, v := range explicit {
		res[k] = v
	}
	return res
}

// compositeKey joins parts with ":", used as rating profile id
func compositeKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// nullable returns nil for empty string to send json null
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// intOrNil dereferences v, nil pointer sent as json null
func intOrNil(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// strOr returns s or def if s is empty
func strOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// nonNilStrings makes sure nil slice sent as [] and not as null
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
