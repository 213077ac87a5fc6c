package versions

// Placeholder names left in the emitted flags. The launching process
// substitutes them before exec.
const (
	PlaceholderNativesDirectory = "natives_directory"
	PlaceholderLauncherName     = "launcher_name"
	PlaceholderLauncherVersion  = "launcher_version"
	PlaceholderClasspath        = "classpath"
)

var baselineFlags = []string{
	"-Djava.library.path=${" + PlaceholderNativesDirectory + "}",
	"-Dminecraft.launcher.brand=${" + PlaceholderLauncherName + "}",
	"-Dminecraft.launcher.version=${" + PlaceholderLauncherVersion + "}",
	"-cp ${" + PlaceholderClasspath + "}",
}

var moduleAccessFlags = []string{
	"--add-opens java.base/java.util.jar=ALL-UNNAMED",
	"--add-opens java.base/java.lang.invoke=ALL-UNNAMED",
}

var exportAccessFlags = []string{
	"--add-exports java.base/sun.security.util=ALL-UNNAMED",
	"--add-exports jdk.naming.dns/com.sun.jndi.dns=java.naming",
}

const (
	largeHeapFlag = "-Xmx2G"
	smallHeapFlag = "-Xmx1G"
	g1gcFlag      = "-XX:+UseG1GC"
)

// JVMFlags assembles the invocation flags for id running on java. The order
// is baseline, module access, export access, then memory/GC.
func JVMFlags(java JavaVersion, id string) []string {
	flags := make([]string, 0, len(baselineFlags)+len(moduleAccessFlags)+len(exportAccessFlags)+2)
	flags = append(flags, baselineFlags...)

	if java >= Java17 {
		flags = append(flags, moduleAccessFlags...)
	}
	if java >= Java21 {
		flags = append(flags, exportAccessFlags...)
	}

	// Heap and collector follow the game version, not the Java version.
	if parsed, ok := ParseVersion(id); ok && parsed.AtLeast(g1gcSince) {
		flags = append(flags, largeHeapFlag, g1gcFlag)
	} else {
		flags = append(flags, smallHeapFlag)
	}

	return flags
}
