// Package blame defines the data exchanged between the session driver and its
// collaborators: the files to annotate, the per-line annotation records and the
// output sink that receives them.
package blame
