// Package hclutil provides small helpers for decoding HCL body content
// into plain Go values.
package hclutil

import (
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DecodeAttribute decodes the named attribute from attrs into target,
// which must be a non-nil pointer to a value gocty can populate. It
// returns false when the attribute is absent; the target is then left
// untouched.
func DecodeAttribute(attrs hcl.Attributes, name string, target any) (bool, hcl.Diagnostics) {
	attr, exists := attrs[name]
	if !exists {
		return false, nil
	}

	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		panic("hclutil: target must be a non-nil pointer")
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return true, diags
	}

	wantType, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		return true, attrErr(attr, "Unsupported attribute target", err.Error())
	}

	converted, err := convert.Convert(val, wantType)
	if err != nil {
		return true, attrErr(attr, "Invalid attribute value", err.Error())
	}

	if err := gocty.FromCtyValue(converted, target); err != nil {
		return true, attrErr(attr, "Invalid attribute value", err.Error())
	}
	return true, nil
}

func attrErr(attr *hcl.Attribute, summary, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{&hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  attr.Expr.Range().Ptr(),
	}}
}
