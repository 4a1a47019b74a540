package main

// _version is the version of anchorcode.
// Release builds override it with
//
//	-ldflags "-X main._version=v1.2.3"
var _version = "dev"
