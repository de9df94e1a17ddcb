// Package config loads md2dox settings from YAML.
//
// A config file only overrides what it names; everything else keeps the
// values from DefaultConfig:
//
//	workDir: docs/doxygen
//	outputDir: pages/generated
//	generator:
//	  binary: /opt/doxygen/bin/doxygen
//	  config: Doxyfile.doxy
//	  strict: true
//	navTree:
//	  path: ../html/navtreedata.js
//	  exclude: [Bug List, Todo List, Deprecated List]
package config
