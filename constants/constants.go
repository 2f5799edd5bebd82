package constants

const (
	DefaultThreshold = float64(10)
	DefaultRowCap    = 50

	DefaultInputPath  = "lockman_optIR_catalogue_science_ready_photoz.arrow"
	DefaultOutputPath = "LOFAR_galaxies.arrow"

	ConfigFolder = "CONFIG_FOLDER"
)

// Flux columns the selection predicate reads. Every column listed in
// RequiredFluxColumns must clear the threshold; for the IRAC channel-1
// pair one of the two measurements is enough.
var (
	RequiredFluxColumns = []string{
		"u_flux", "g_flux", "r_flux", "z_flux",
		"J_flux", "K_flux",
		"F_SPIRE_250", "F_PACS_160", "F_PACS_100", "F_MIPS_24",
	}
	Channel1FluxColumns = []string{"ch1_swire_flux", "ch1_servs_flux"}
)
