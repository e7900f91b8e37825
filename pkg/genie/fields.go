package genie

import "context"

// fieldSpec describes one lazily-cached info field: where it lives in the
// service's metadata and whether it can change while the job is running.
type fieldSpec struct {
	key     string
	section Section

	// volatile fields are re-fetched even when cached, as long as the job
	// is still in a running status.
	volatile bool
}

// fetchField applies the caching policy for spec and returns whatever the
// cache then holds for the field, which may still be nil if the service
// never set it.
func (rj *RunningJob) fetchField(ctx context.Context, spec fieldSpec) (any, error) {
	if _, ok := rj.info[spec.key]; !ok {
		if err := rj.updateInfo(ctx, spec.section); err != nil {
			return nil, err
		}
	} else if spec.volatile {
		status, err := rj.Status(ctx)
		if err != nil {
			return nil, err
		}
		if IsRunningStatus(status) {
			if err := rj.updateInfo(ctx, spec.section); err != nil {
				return nil, err
			}
		}
	}
	return rj.info[spec.key], nil
}

func (rj *RunningJob) stringField(ctx context.Context, spec fieldSpec) (string, error) {
	v, err := rj.fetchField(ctx, spec)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

func (rj *RunningJob) stringSliceField(ctx context.Context, spec fieldSpec) ([]string, error) {
	v, err := rj.fetchField(ctx, spec)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case []string:
		return t, nil
	case []any:
		// JSON decoding yields []any; keep only string members.
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out, nil
	}
	return nil, nil
}

func (rj *RunningJob) mapField(ctx context.Context, spec fieldSpec) (map[string]any, error) {
	v, err := rj.fetchField(ctx, spec)
	if err != nil {
		return nil, err
	}
	m, _ := v.(map[string]any)
	return m, nil
}
