package glout

// Version is a placeholder so the directory holds a Go package.
const Version = 1
