// Package tree models a directory hierarchy reconstructed from a shell transcript.
//
// A tree is owned top-down: each Directory owns its subdirectories and files,
// and keeps a non-owning link back to its parent. Sizes are never cached and
// are recomputed from the current contents on every call.
package tree
