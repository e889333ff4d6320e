package buildsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibrariesOrder(t *testing.T) {
	assert.Equal(t, []string{
		"SuiteSparse_config", "Mongoose", "AMD", "BTF", "CAMD", "CCOLAMD", "COLAMD",
		"CHOLMOD", "CXSparse", "LDL", "KLU", "UMFPACK", "RBio", "SuiteSparse_GPURuntime",
		"GPUQREngine", "SPQR", "GraphBLAS", "SPEX",
	}, Libraries())
}

func TestSplitLibrariesSkipsEmpty(t *testing.T) {
	assert.Equal(t, []string{"AMD", "BTF"}, splitLibraries(":AMD::BTF:"))
	assert.Empty(t, splitLibraries(""))
}

func TestLibrariesReturnsCopy(t *testing.T) {
	libs := Libraries()
	libs[0] = "changed"
	assert.Equal(t, "SuiteSparse_config", Libraries()[0])
}
