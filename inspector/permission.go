package inspector

import (
	"github.com/m-manu/fsinspect/entity"
	"github.com/m-manu/fsinspect/fmte"
	"github.com/m-manu/fsinspect/permission"
)

// Permission returns the numeric ("755") or symbolic ("rwxr-xr-x") permission
// string of the path, or the part of it selected by scope.
// It never fails: on error the result is "" and, unless suppressErrors is set,
// the error is printed to stderr.
func (in *PathInspector) Permission(scope entity.PermissionScope, asNumeric bool, suppressErrors bool) string {
	if in.missing() {
		return in.notFound
	}
	raw, err := in.permissions.QueryPermissionString(in.path, asNumeric)
	if err == nil {
		var scoped string
		if scoped, err = permission.Slice(raw, scope, asNumeric); err == nil {
			return scoped
		}
	}
	if !suppressErrors {
		fmte.PrintfErr("couldn't read permissions of \"%s\": %+v\n", in.path, err)
	}
	return ""
}
