package inspector

import "github.com/m-manu/fsinspect/classify"

// InferredType returns "Folder" for directories and otherwise the label of the
// first classification bucket holding the path's extension ("Unknown file" if none).
func (in *PathInspector) InferredType() (string, error) {
	if in.missing() {
		return in.notFound, nil
	}
	fi, err := in.stat()
	if err != nil {
		return "", err
	}
	if fi.IsDir {
		return classify.FolderLabel, nil
	}
	return classify.OfFile(in.path), nil
}
