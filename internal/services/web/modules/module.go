// Package modules defines web module registry helpers.
package modules

import module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"

// Dependencies aliases the shared module dependencies type.
type Dependencies = module.Dependencies

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
