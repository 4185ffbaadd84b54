package dto

func mapAll[S, D any](items []S, project func(S) D) []D {
	out := make([]D, len(items))
	for i, item := range items {
		out[i] = project(item)
	}
	return out
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
