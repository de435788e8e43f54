package inspector

import "github.com/m-manu/fsinspect/entity"

// Report gathers size, timestamps (formatted with g), owner, permissions and type of the path.
// Permission failures leave the permission fields empty; they are never printed.
func (in *PathInspector) Report(g entity.DateTimeGranularity) (entity.Report, error) {
	var err error
	r := entity.Report{Path: in.path}
	if r.Size, err = in.Size(); err != nil {
		return entity.Report{}, err
	}
	if r.Modified, err = in.LastModified(g); err != nil {
		return entity.Report{}, err
	}
	if r.Created, err = in.Created(g); err != nil {
		return entity.Report{}, err
	}
	if r.Accessed, err = in.LastAccessed(g); err != nil {
		return entity.Report{}, err
	}
	if r.Owner, err = in.Owner(); err != nil {
		return entity.Report{}, err
	}
	r.Permission = in.Permission(entity.ScopeAll, false, true)
	r.PermissionNumeric = in.Permission(entity.ScopeAll, true, true)
	if r.Type, err = in.InferredType(); err != nil {
		return entity.Report{}, err
	}
	return r, nil
}

// Describe renders the full-precision Report as a multi-line human-readable block
func (in *PathInspector) Describe() (string, error) {
	r, err := in.Report(entity.GranularityDateTime)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}
