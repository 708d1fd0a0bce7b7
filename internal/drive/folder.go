package drive

import "context"

// ListFolderByName resolves a folder by name and lists its direct children.
// The boolean reports whether the folder exists; an absent folder is not an
// error. When strict is true the folder is resolved with FindUnique, so an
// ambiguous folder name fails instead of silently picking one.
func ListFolderByName(ctx context.Context, cat Catalog, folder string, strict bool, opts ListOptions) ([]*FileInfo, bool, error) {
	find := FindFirst
	if strict {
		find = FindUnique
	}

	parent, found, err := find(ctx, cat, folder, KindFolder)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	opts.Query = childrenQuery(parent.ID)
	files, err := ListAll(ctx, cat, opts)
	if err != nil {
		return nil, false, err
	}
	return files, true, nil
}
