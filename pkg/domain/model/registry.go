package model

import (
	"fmt"
	"sort"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// BuildOptions carries dataset-specific variant selectors. Unused fields are
// ignored by datasets that do not take a variant.
type BuildOptions struct {
	// Size selects the Caltech101 silhouette image size (16 or 28)
	Size int

	// Format selects the SVHN distribution format (1: full numbers,
	// 2: cropped digits)
	Format int
}

// SpecBuilder constructs an immutable DatasetSpec from variant options
type SpecBuilder func(opts BuildOptions) (*DatasetSpec, error)

// builders is the closed dispatch table from dataset name to spec builder
var builders = map[types.Dataset]SpecBuilder{
	types.DatasetMNIST:                 func(BuildOptions) (*DatasetSpec, error) { return MNIST(), nil },
	types.DatasetBinarizedMNIST:        func(BuildOptions) (*DatasetSpec, error) { return BinarizedMNIST(), nil },
	types.DatasetCaltech101Silhouettes: func(o BuildOptions) (*DatasetSpec, error) { return Caltech101Silhouettes(o.Size) },
	types.DatasetCIFAR10:               func(BuildOptions) (*DatasetSpec, error) { return CIFAR10(), nil },
	types.DatasetCIFAR100:              func(BuildOptions) (*DatasetSpec, error) { return CIFAR100(), nil },
	types.DatasetSVHN:                  func(o BuildOptions) (*DatasetSpec, error) { return SVHN(o.Format) },
}

// Build constructs the spec for a dataset via the dispatch table
func Build(name types.Dataset, opts BuildOptions) (*DatasetSpec, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownDataset, "dataset is not registered", goerr.V("dataset", name))
	}
	return builder(opts)
}

// Datasets returns all registered dataset names in sorted order
func Datasets() []types.Dataset {
	names := make([]types.Dataset, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// MNIST returns the spec for the MNIST handwritten digits dataset
func MNIST() *DatasetSpec {
	filenames := []string{
		"train-images-idx3-ubyte.gz",
		"train-labels-idx1-ubyte.gz",
		"t10k-images-idx3-ubyte.gz",
		"t10k-labels-idx1-ubyte.gz",
	}
	urls := make([]string, len(filenames))
	for i, f := range filenames {
		urls[i] = "http://yann.lecun.com/exdb/mnist/" + f
	}
	return &DatasetSpec{
		Name:      types.DatasetMNIST,
		URLs:      urls,
		Filenames: filenames,
	}
}

// BinarizedMNIST returns the spec for Larochelle's binarized MNIST splits
func BinarizedMNIST() *DatasetSpec {
	sets := []string{"train", "valid", "test"}
	urls := make([]string, len(sets))
	filenames := make([]string, len(sets))
	for i, s := range sets {
		filenames[i] = fmt.Sprintf("binarized_mnist_%s.amat", s)
		urls[i] = "http://www.cs.toronto.edu/~larocheh/public/datasets/binarized_mnist/" + filenames[i]
	}
	return &DatasetSpec{
		Name:      types.DatasetBinarizedMNIST,
		URLs:      urls,
		Filenames: filenames,
	}
}

// Caltech101Silhouettes returns the spec for the Caltech101 silhouettes
// dataset at the given image size. Only 16x16 and 28x28 are published.
func Caltech101Silhouettes(size int) (*DatasetSpec, error) {
	if size != 16 && size != 28 {
		return nil, goerr.Wrap(types.ErrInvalidVariant, "silhouette size must be 16 or 28", goerr.V("size", size))
	}
	filename := fmt.Sprintf("caltech101_silhouettes_%d_split1.mat", size)
	return &DatasetSpec{
		Name:      types.DatasetCaltech101Silhouettes,
		URLs:      []string{""},
		Filenames: []string{filename},
		URLPrefix: "https://people.cs.umass.edu/~marlin/data/",
	}, nil
}

// CIFAR10 returns the spec for the CIFAR-10 python tarball
func CIFAR10() *DatasetSpec {
	return &DatasetSpec{
		Name:      types.DatasetCIFAR10,
		URLs:      []string{"http://www.cs.toronto.edu/~kriz/cifar-10-python.tar.gz"},
		Filenames: []string{"cifar-10-python.tar.gz"},
	}
}

// CIFAR100 returns the spec for the CIFAR-100 python tarball
func CIFAR100() *DatasetSpec {
	return &DatasetSpec{
		Name:      types.DatasetCIFAR100,
		URLs:      []string{"http://www.cs.toronto.edu/~kriz/cifar-100-python.tar.gz"},
		Filenames: []string{"cifar-100-python.tar.gz"},
	}
}

// SVHN returns the spec for the Street View House Numbers dataset in the
// given format (1: original images, 2: cropped 32x32 digits). The files are
// addressed by prefix + filename only.
func SVHN(format int) (*DatasetSpec, error) {
	var filenames []string
	switch format {
	case 1:
		filenames = []string{"train.tar.gz", "test.tar.gz", "extra.tar.gz"}
	case 2:
		filenames = []string{"train_32x32.mat", "test_32x32.mat", "extra_32x32.mat"}
	default:
		return nil, goerr.Wrap(types.ErrInvalidVariant, "SVHN format must be 1 or 2", goerr.V("format", format))
	}
	return &DatasetSpec{
		Name:      types.DatasetSVHN,
		URLs:      make([]string, len(filenames)),
		Filenames: filenames,
		URLPrefix: "http://ufldl.stanford.edu/housenumbers/",
	}, nil
}
