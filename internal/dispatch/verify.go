// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"strings"

	"github.com/cmdseq/cmdseq/internal/argv"
	"github.com/cmdseq/cmdseq/internal/envvar"
	"github.com/cmdseq/cmdseq/internal/registry"
)

// Missing returns every mandatory argument key of cmd that is neither present
// in args (the lowercase map) nor resolvable from env, lowercased and in
// declaration order. Its length is the verification failure count; an empty
// result means cmd may run. A key given with an empty value is present.
func Missing(cmd registry.Command, args argv.Args, env *envvar.Resolver) []string {
	var missing []string
	for _, key := range cmd.MandatoryArgs() {
		lk := strings.ToLower(key)
		if args.Has(lk) || env.Has(lk) {
			continue
		}
		missing = append(missing, lk)
	}
	return missing
}
