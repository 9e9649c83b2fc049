package render

import (
	"encoding/json"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FilesMetaKey is the payload key carrying metadata of uploaded files.
const FilesMetaKey = "__filesMeta__"

// FileMeta describes one uploaded file in a submission.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Submission is the payload handed to the submission sink. It encodes as a
// flat object keyed by field id; file fields carry URL lists and their
// metadata is grouped under FilesMetaKey.
type Submission struct {
	Values map[string]any
	Files  map[string][]FileMeta
}

// BuildSubmission collects the value of every leaf field, defaults included.
// Neither schema nor values are modified.
func BuildSubmission(schema model.FormSchema, values Values) Submission {
	sub := Submission{Values: map[string]any{}}
	schema.Leaves(func(_ string, f model.LeafField) {
		value := FieldValue(f, values)
		refs, ok := value.([]model.FileRef)
		if !ok {
			sub.Values[model.ID(f)] = value
			return
		}
		urls := make([]string, 0, len(refs))
		meta := make([]FileMeta, 0, len(refs))
		for _, ref := range refs {
			urls = append(urls, ref.URL)
			meta = append(meta, FileMeta{Name: ref.Name, Size: ref.Size, Type: ref.MimeType})
		}
		sub.Values[model.ID(f)] = urls
		if sub.Files == nil {
			sub.Files = map[string][]FileMeta{}
		}
		sub.Files[model.ID(f)] = meta
	})
	return sub
}

// MarshalJSON flattens the submission into a single object.
func (s Submission) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Values)+1)
	for k, v := range s.Values {
		out[k] = v
	}
	if len(s.Files) > 0 {
		out[FilesMetaKey] = s.Files
	}
	return json.Marshal(out)
}
