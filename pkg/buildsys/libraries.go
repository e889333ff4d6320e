package buildsys

import "strings"

// buildLibs lists the libraries in link order. Later entries link against earlier
// ones, so this order must not change.
const buildLibs = "SuiteSparse_config:Mongoose:AMD:BTF:CAMD:CCOLAMD:COLAMD:CHOLMOD:CXSparse:LDL:KLU:UMFPACK:RBio:SuiteSparse_GPURuntime:GPUQREngine:SPQR:GraphBLAS:SPEX"

// Libraries returns a fresh copy of the build order.
func Libraries() []string {
	return splitLibraries(buildLibs)
}

func splitLibraries(list string) []string {
	result := make([]string, 0)
	for _, lib := range strings.Split(list, ":") {
		if lib == "" {
			continue
		}

		result = append(result, lib)
	}

	return result
}
