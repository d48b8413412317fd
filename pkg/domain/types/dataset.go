package types

// Dataset identifies a downloadable dataset. The set is closed: every value
// maps to a spec builder in the model registry.
type Dataset string

const (
	DatasetMNIST                 Dataset = "mnist"
	DatasetBinarizedMNIST        Dataset = "binarized_mnist"
	DatasetCaltech101Silhouettes Dataset = "caltech101_silhouettes"
	DatasetCIFAR10               Dataset = "cifar10"
	DatasetCIFAR100              Dataset = "cifar100"
	DatasetSVHN                  Dataset = "svhn"
)

// String returns the dataset name as used for CLI subcommands
func (d Dataset) String() string {
	return string(d)
}
