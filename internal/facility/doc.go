// Package facility provides the optional source-producing facilities a host
// build can offer: the plain "java" module system and the Android
// application and library variant systems.
//
// Facilities differ in two ways that matter to the compliance plugin: the
// infix they contribute to task names and how they enumerate a group's
// files. Java enumerates source roots only; Android enumerates sources and
// resources together.
package facility
