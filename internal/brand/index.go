package brand

// IndexPage is the landing document served on "/". The stylesheet it links
// must exist in the site root or the page renders unstyled.
const IndexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>NEXUS TLDark - Premium Brand System</title>
    <link rel="stylesheet" href="nexus_design_system.css">
    <style>
        body {
            background: var(--tldark-primary);
            font-family: 'Inter', system-ui, sans-serif;
            margin: 0;
            padding: var(--space-8);
            min-height: 100vh;
        }
        .brand-index {
            max-width: 1200px;
            margin: 0 auto;
            text-align: center;
        }
        .component-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: var(--space-6);
            margin: var(--space-12) 0;
        }
        .component-card {
            background: var(--glass-surface-2);
            backdrop-filter: var(--blur-md);
            border: 1px solid var(--glass-border);
            border-radius: var(--radius-lg);
            padding: var(--space-6);
            transition: all 0.3s ease;
        }
        .component-card:hover {
            transform: translateY(-4px);
            box-shadow: var(--elevation-2);
        }
        .download-section {
            background: var(--glass-gradient-1);
            backdrop-filter: var(--blur-lg);
            border: 1px solid var(--accent-silver);
            border-radius: var(--radius-xl);
            padding: var(--space-8);
            margin: var(--space-12) 0;
        }
    </style>
</head>
<body>
    <div class="brand-index">
        <h1 class="nexus-heading nexus-heading--hero">🎯 NEXUS TLDark</h1>
        <p class="nexus-text" style="font-size: var(--font-size-xl); color: var(--text-primary); margin-bottom: var(--space-8);">
            Premium Glassmorphic Brand System
        </p>

        <div class="component-grid">
            <div class="component-card">
                <h3>🏠 Landing Page</h3>
                <p>Conversion-optimized landing page with premium glassmorphic effects</p>
                <a href="nexus_landing_page.html" class="nexus-btn nexus-btn--primary">View Component</a>
            </div>

            <div class="component-card">
                <h3>🎨 Brand Showcase</h3>
                <p>Interactive demonstration of complete brand system components</p>
                <a href="nexus_brand_showcase.html" class="nexus-btn nexus-btn--primary">View Component</a>
            </div>

            <div class="component-card">
                <h3>📢 Banner Campaigns</h3>
                <p>Marketing banner collection with TLDark glassmorphic styling</p>
                <a href="nexus_banner_campaigns.html" class="nexus-btn nexus-btn--primary">View Component</a>
            </div>

            <div class="component-card">
                <h3>🏷️ Logo System</h3>
                <p>Complete logo variations and brand identity showcase</p>
                <a href="nexus_logo_system.html" class="nexus-btn nexus-btn--primary">View Component</a>
            </div>
        </div>

        <div class="download-section">
            <h2>📦 Download Complete Brand System</h2>
            <p style="color: var(--text-muted); margin: var(--space-4) 0;">
                Get the complete NEXUS TLDark glassmorphic brand system with all components, assets, and documentation.
            </p>
            <div style="display: flex; gap: var(--space-4); justify-content: center; flex-wrap: wrap;">
                <a href="DOWNLOAD_PACKAGE_GUIDE.md" class="nexus-btn nexus-btn--primary">📖 Download Guide</a>
                <a href="/download" class="nexus-btn nexus-btn--secondary">📊 Package Info</a>
                <a href="/api/brand-info" class="nexus-btn nexus-btn--ghost">🔧 API Data</a>
            </div>
        </div>
    </div>
</body>
</html>`
