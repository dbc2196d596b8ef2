package svg

import "fmt"

// WarpElement warps the path targetID along the guide path guideID and
// stores the result in the path outID.
func WarpElement(store PathStore, guideID, targetID, outID string, opts ...Option) error {
	g, err := loadGuide(store, guideID)
	if err != nil {
		return err
	}

	d, err := store.LoadPath(targetID)
	if err != nil {
		return err
	}
	warped, err := WarpToLine(d, g, opts...)
	if err != nil {
		return fmt.Errorf("path %q: %w", targetID, err)
	}
	return store.StorePath(outID, warped)
}

// WarpGroup warps every path below targetGroupID along the guide path
// guideID and appends the results to outGroupID. It returns how many
// paths were written. Results are appended only after every path has
// warped successfully.
func WarpGroup(store GroupStore, guideID, targetGroupID, outGroupID string, opts ...Option) (int, error) {
	g, err := loadGuide(store, guideID)
	if err != nil {
		return 0, err
	}

	w := NewWarper(opts...)
	type result struct{ id, d string }
	var results []result
	err = store.ForEachChild(targetGroupID, func(id, d string) error {
		in, err := ParsePath(d)
		if err != nil {
			return fmt.Errorf("path %q: %w", id, err)
		}
		out, err := w.Transform(in, g)
		if err != nil {
			return fmt.Errorf("path %q: %w", id, err)
		}
		var outID string
		if id != "" {
			outID = id + "-warped"
		}
		results = append(results, result{id: outID, d: Serialize(out)})
		return nil
	})
	if err != nil {
		return 0, err
	}

	for n, r := range results {
		if err := store.AppendPath(outGroupID, r.id, r.d); err != nil {
			return n, err
		}
	}
	w.logger().Debug("warped group", "group", targetGroupID, "paths", len(results))
	return len(results), nil
}

func loadGuide(store PathStore, guideID string) (Guide, error) {
	d, err := store.LoadPath(guideID)
	if err != nil {
		return Guide{}, err
	}
	g, err := GuideFromPath(d)
	if err != nil {
		return Guide{}, fmt.Errorf("path %q: %w", guideID, err)
	}
	return g, nil
}
