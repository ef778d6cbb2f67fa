/*
Package analyzer implements the business intelligence of the pbxscope
PBX log analysis suite.

The project has three main source packages:
`cmd`: Main applications, the analyzer console tool and its launcher.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package analyzer
