// Package config provides configuration management for capsection.
//
// This package implements a layered configuration system that lets a site
// describe its capabilities section, the standalone page around it and the
// preview server through YAML files. Later sources override earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - The built-in section content (three sample capabilities)
//     - Server on localhost:8080
//
//  2. User Configuration (~/.config/capsection/config.yaml)
//
//  3. Project Configuration (./.capsection/config.yaml)
//
// An explicit path (LoadConfigFromPath) or a Kubernetes ConfigMap
// (LoadFromConfigMap) replaces layers 2 and 3 and is applied directly over
// the defaults.
//
// # Configuration Structure
//
//	section:
//	  title:
//	    text: "Manufacturing"
//	    accent: "Capabilities"
//	  subtitle: "Technical Expertise"
//	  companyName: "CQS"
//	  buttonLink: "${CONTACT_URL:-#}"
//	  capabilities:
//	    - id: "CAP-01"
//	      title: "Aluminum Die Casting"
//	      image: "https://..."
//	      features: ["High-pressure die casting up to 1,600 tons"]
//	      precision: "±0.1mm"
//	      capacity: "500,000 units/year"
//
//	server:
//	  host: "0.0.0.0"
//	  port: 8080
//	  watch: true
//
//	page:
//	  title: "CQS | Capabilities"
//	  scripts: ["https://cdn.tailwindcss.com"]
//
// # Merge Rules
//
// Scalar values override when non-empty. The capabilities list is replaced
// wholesale whenever a layer sets it, including an explicit empty list
// (capabilities: []), which renders an empty grid.
//
// # Environment Variable Expansion
//
// ${VAR} and ${VAR:-default} are expanded before parsing. A bare $ is left
// untouched.
//
// # Hot Reload
//
// Watcher re-reads a file on change and publishes the new configuration
// atomically; a broken edit is logged and the previous configuration stays
// active.
package config
