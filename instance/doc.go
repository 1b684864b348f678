// Package instance models balanced-bisection instances: a graph over 2n
// nodes together with a crossing budget k. It parses the two textual input
// formats (the simple "n k" format and the DIMACS graph format), rejects
// CNF input, and loads plain, bzip2 or gzip compressed files.
package instance
