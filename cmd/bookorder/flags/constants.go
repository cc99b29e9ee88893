package flags

const Verbose = `v`
const Quiet = `q`
const Plain = `plain`
const Help = `h`
const NoConfirm = `y`
const Settings = `config`
const Source = `source`
const Output = `output`
const Ignore = `ignore`
const IncludeUnnumberedDirectories = `include-unnumbered-directories`
const IncludeContentWithoutSection = `include-directory-content-without-section`
const RelativeLinks = `relative-links`
const Width = `width`
const NoSummary = `no-summary`
